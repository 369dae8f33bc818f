package nav

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/eventshell/internal/domain/auth"
)

type recordingView struct {
	calls  int
	viewer auth.Identity
	param  string
	err    error
}

func (v *recordingView) Render(_ context.Context, viewer auth.Identity, param string) error {
	v.calls++
	v.viewer = viewer
	v.param = param
	return v.err
}

func TestTableResolveStatic(t *testing.T) {
	list := &recordingView{}
	table := NewTable().Handle(TargetEvents, list)

	view, param, ok := table.Resolve(TargetEvents)
	require.True(t, ok)
	assert.Same(t, list, view.(*recordingView))
	assert.Empty(t, param)

	_, _, ok = table.Resolve(Target("#/nope"))
	assert.False(t, ok)
}

func TestTableResolveDynamicPriority(t *testing.T) {
	static := &recordingView{}
	edit := &recordingView{}
	table := NewTable().
		Handle(TargetEvents, static).
		HandlePrefix(PrefixEditEvent, edit)

	view, param, ok := table.Resolve(EditEvent("42"))
	require.True(t, ok)
	assert.Same(t, edit, view.(*recordingView))
	assert.Equal(t, "42", param)

	// A static entry shadowed by a dynamic prefix never wins.
	table.Handle(EditEvent("42"), static)
	view, param, ok = table.Resolve(EditEvent("42"))
	require.True(t, ok)
	assert.Same(t, edit, view.(*recordingView))
	assert.Equal(t, "42", param)
}

func TestTargetLastSegment(t *testing.T) {
	assert.Equal(t, "42", EditEvent("42").LastSegment())
	assert.Equal(t, "u-7", EditUser("u-7").LastSegment())
	assert.Equal(t, "dashboard", TargetDashboard.LastSegment())
}
