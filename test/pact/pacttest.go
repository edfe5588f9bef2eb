//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "boutique-api"
	ConsumerName = "boutique-portal"

	StateBoutiquesBaseline = "boutiques baseline"
	StateBoutiqueExists    = "boutique with id 101 exists"
	StateBoutiqueMissing   = "no boutique with id 404"
)

const (
	ExistingBoutiqueID int64 = 101
	MissingBoutiqueID  int64 = 404

	ExistingBoutiqueOpinion int32 = 7
)

const (
	exampleName       = "Chez Pact"
	exampleAddress    = "12 Rue du Contrat"
	exampleCity       = "Lyon"
	examplePostalCode = 69001
)

// ExampleBoutiquePayload provides stable test data for pact interactions.
func ExampleBoutiquePayload() map[string]any {
	return map[string]any{
		"id":         ExistingBoutiqueID,
		"nom":        exampleName,
		"adresse":    exampleAddress,
		"ville":      exampleCity,
		"codePostal": examplePostalCode,
		"avis":       ExistingBoutiqueOpinion,
	}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the boutique portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
