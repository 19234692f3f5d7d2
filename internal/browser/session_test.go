package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonetui/tone/internal/resource"
)

func TestSession_startsAtVmsRoot(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", false)

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, resource.Vms, s.Current().Kind)
	assert.Equal(t, []string{"one-vms"}, s.Breadcrumb())
}

func TestSession_pushPop(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", false)
	root := s.Current()

	hosts := s.Push(resource.Hosts)
	assert.Equal(t, 2, s.Depth())
	assert.Same(t, hosts, s.Current())
	assert.Equal(t, []string{"one-vms", "one-hosts"}, s.Breadcrumb())

	// a pushed view starts empty; its first refresh is still to come
	assert.Empty(t, hosts.Items())
	assert.Equal(t, 0, hosts.Generation())

	require.True(t, s.Pop())
	assert.Equal(t, 1, s.Depth())
	assert.Same(t, root, s.Current())
}

func TestSession_popAtRootIsStatusNotError(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", false)

	assert.False(t, s.Pop())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, "Already at the root view", s.Status())
}

func TestSession_popRestoresViewUntouched(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", false)
	root := s.Current()
	require.True(t, root.ApplyList(root.BeginRefresh(), testItems(), nil))
	root.MoveSelection(2)
	root.SetFilter("db")

	s.Push(resource.Images)
	require.True(t, s.Pop())

	assert.Equal(t, "db", s.Current().Filter())
	item, ok := s.Current().SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "db-1", item.Name)
}

func TestSession_viewByID(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", false)
	root := s.Current()
	hosts := s.Push(resource.Hosts)

	assert.Same(t, root, s.ViewByID(root.ID))
	assert.Same(t, hosts, s.ViewByID(hosts.ID))

	// popped views are no longer addressable, so their late async
	// results fall through to nil and get dropped
	require.True(t, s.Pop())
	assert.Nil(t, s.ViewByID(hosts.ID))
}

func TestSession_status(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", true)

	assert.True(t, s.Readonly())
	assert.Empty(t, s.Status())

	s.SetStatus("Filter applied")
	assert.Equal(t, "Filter applied", s.Status())

	s.ClearStatus()
	assert.Empty(t, s.Status())
}
