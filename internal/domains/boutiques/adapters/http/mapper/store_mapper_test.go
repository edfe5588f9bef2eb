package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
)

func TestFromDomainStores_SkipsNilAndKeepsOrder(t *testing.T) {
	first := domain.NewPlaceholderStore()
	first.ID = 2
	second := domain.NewPlaceholderStore()
	second.ID = 1
	second.Rate(4)

	result := FromDomainStores([]*domain.Store{first, nil, second})
	require.Len(t, result, 2)
	require.Equal(t, int64(2), result[0].ID)
	require.Nil(t, result[0].Opinion)
	require.Equal(t, int32(4), *result[1].Opinion)

	*result[1].Opinion = 9
	require.Equal(t, int32(4), *second.Opinion)
}
