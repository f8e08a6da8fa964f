package storage

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/arthur-debert/loadfile/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stores are often built before the program configures logging, e.g. the
// package-level default client.
func TestStoresLogThroughLoggerSetAfterConstruction(t *testing.T) {
	fileStore, _ := newTestFileStore(t, nil)
	webStore := NewWebStore(NewMemoryAreas(), nil)

	var buf bytes.Buffer
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer func() {
		logging.SetLogger(zerolog.Nop())
		zerolog.SetGlobalLevel(prev)
	}()

	require.NoError(t, fileStore.SaveRaw(types.Data, "game", "slot1", []byte("x")))
	_, err := fileStore.LoadRaw(types.Data, "game", "slot1")
	require.NoError(t, err)
	require.NoError(t, webStore.SaveRaw(types.Cache, "game", "slot1", []byte("x")))

	out := buf.String()
	assert.Contains(t, out, `"component":"storage"`)
	assert.Contains(t, out, `"message":"saved"`)
	assert.Contains(t, out, `"message":"loaded"`)
	assert.Contains(t, out, `"operation":"save slot1"`)
	assert.Contains(t, out, `"operation":"load slot1"`)
	assert.Contains(t, out, `"key":"slot1"`)
}
