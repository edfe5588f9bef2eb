package types

// OpinionRange is an inclusive opinion filter. Min greater than Max matches nothing.
type OpinionRange struct {
	Min int32
	Max int32
}
