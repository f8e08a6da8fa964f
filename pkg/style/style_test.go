package style

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderError(t *testing.T) {
	assert.Empty(t, RenderError(nil))

	plain := RenderError(stderrors.New("boom"))
	assert.Contains(t, plain, "Error:")
	assert.Contains(t, plain, "boom")
	assert.NotContains(t, plain, "[")

	coded := RenderError(errors.New(errors.ErrSaveNotFound, "save \"slot1\" not found"))
	assert.Contains(t, coded, "slot1")
	assert.Equal(t, 1, strings.Count(coded, "[SAVE_NOT_FOUND]"), coded)

	status := RenderError(errors.Newf(errors.ErrHTTPStatus, "non-success status code %d returned", 404))
	assert.Equal(t, 1, strings.Count(status, "[HTTP_STATUS]"), status)
	assert.Contains(t, status, "non-success status code 404 returned")

	// wrapped by a caller: the code is no longer a prefix and is left alone
	outer := RenderError(fmt.Errorf("loading level: %w", errors.New(errors.ErrIO, "disk gone")))
	assert.Equal(t, 1, strings.Count(outer, "[IO]"), outer)
	assert.Contains(t, outer, "loading level: [IO] disk gone")
}

func TestLocationStyle(t *testing.T) {
	assert.Equal(t, SessionColor, LocationStyle(types.Cache).GetForeground())
	assert.Equal(t, PersistentColor, LocationStyle(types.Data).GetForeground())
	assert.Equal(t, PersistentColor, LocationStyle(types.Config).GetForeground())
}
