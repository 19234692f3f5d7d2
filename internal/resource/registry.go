package resource

import (
	"slices"

	"github.com/tonetui/tone/internal/errdef"
)

// ColumnFormat selects how a raw document value becomes a display cell.
type ColumnFormat int

const (
	// FormatText shows the value as-is.
	FormatText ColumnFormat = iota
	// FormatState shows the item's composite state label.
	FormatState
	// FormatSizeMB shows an OpenNebula megabyte count as a human size.
	FormatSizeMB
	// FormatCount shows how many values sit at the path.
	FormatCount
)

// Column describes one table column: where its value comes from in the
// raw document and how it renders.
type Column struct {
	Key    string
	Title  string
	Path   string
	Format ColumnFormat
	// Width fixes the column width; zero means the column flexes.
	Width      int
	FlexFactor int
}

// Descriptor is the registry entry for a kind: its table columns, the
// actions it supports, and the API methods behind it.
type Descriptor struct {
	Title   string
	Columns []Column
	Actions []Action
	// Mutable kinds accept actions; everything else is browse-only.
	Mutable bool

	PoolMethod   string
	PoolArgs     []int
	PoolPath     string
	InfoMethod   string
	ActionMethod string
}

// Supports reports whether the kind offers the action.
func (d Descriptor) Supports(action Action) bool {
	return slices.Contains(d.Actions, action)
}

// Describe returns the registry entry for a kind.
func Describe(k Kind) Descriptor {
	return registry[k]
}

// ResolveAlias maps a command token such as "one-vms" to its kind. The
// match is case-sensitive and exact.
func ResolveAlias(token string) (Kind, error) {
	for _, k := range Kinds() {
		if token == k.String() {
			return k, nil
		}
	}
	return 0, errdef.New(errdef.CodeUnknownResource, "Unknown resource: %s", token)
}

// Aliases lists every kind's command token, sorted for the command bar.
func Aliases() []string {
	aliases := make([]string, len(Kinds()))
	for i, k := range Kinds() {
		aliases[i] = k.String()
	}
	slices.Sort(aliases)
	return aliases
}

var registry = map[Kind]Descriptor{
	Vms: {
		Title: "Virtual Machines",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 2},
			{Key: ColumnState, Title: "STATE", Format: FormatState, Width: 18},
			{Key: "HOST", Title: "HOST", Path: "HISTORY_RECORDS.HISTORY.HOSTNAME", FlexFactor: 1},
			{Key: "CPU", Title: "CPU", Path: "TEMPLATE.CPU", Width: 5},
			{Key: "MEM", Title: "MEM", Path: "TEMPLATE.MEMORY", Format: FormatSizeMB, Width: 9},
		},
		Actions:      []Action{Resume, Suspend, Stop, PowerOff, Hold, Release, Terminate},
		Mutable:      true,
		PoolMethod:   "one.vmpool.info",
		PoolArgs:     []int{-2, -1, -1, -1},
		PoolPath:     "VM_POOL.VM",
		InfoMethod:   "one.vm.info",
		ActionMethod: "one.vm.action",
	},
	Hosts: {
		Title: "Hosts",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 2},
			{Key: ColumnState, Title: "STATE", Format: FormatState, Width: 22},
			{Key: "CLUSTER", Title: "CLUSTER", Path: "CLUSTER", FlexFactor: 1},
			{Key: "RVMS", Title: "RVMS", Path: "HOST_SHARE.RUNNING_VMS", Width: 6},
		},
		PoolMethod: "one.hostpool.info",
		PoolPath:   "HOST_POOL.HOST",
		InfoMethod: "one.host.info",
	},
	Datastores: {
		Title: "Datastores",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 2},
			{Key: ColumnState, Title: "STATE", Format: FormatState, Width: 10},
			{Key: "DRIVER", Title: "DRIVER", Path: "DS_MAD", Width: 10},
			{Key: "TOTAL", Title: "TOTAL", Path: "TOTAL_MB", Format: FormatSizeMB, Width: 9},
			{Key: "FREE", Title: "FREE", Path: "FREE_MB", Format: FormatSizeMB, Width: 9},
		},
		PoolMethod: "one.datastorepool.info",
		PoolPath:   "DATASTORE_POOL.DATASTORE",
		InfoMethod: "one.datastore.info",
	},
	VNets: {
		Title: "Virtual Networks",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 2},
			{Key: "BRIDGE", Title: "BRIDGE", Path: "BRIDGE", FlexFactor: 1},
			{Key: "DRIVER", Title: "DRIVER", Path: "VN_MAD", Width: 10},
			{Key: "LEASES", Title: "LEASES", Path: "USED_LEASES", Width: 7},
		},
		PoolMethod: "one.vnpool.info",
		PoolArgs:   []int{-2, -1, -1},
		PoolPath:   "VNET_POOL.VNET",
		InfoMethod: "one.vn.info",
	},
	Images: {
		Title: "Images",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 2},
			{Key: ColumnState, Title: "STATE", Format: FormatState, Width: 18},
			{Key: "DATASTORE", Title: "DATASTORE", Path: "DATASTORE", FlexFactor: 1},
			{Key: "SIZE", Title: "SIZE", Path: "SIZE", Format: FormatSizeMB, Width: 9},
			{Key: "RVMS", Title: "RVMS", Path: "RUNNING_VMS", Width: 6},
		},
		PoolMethod: "one.imagepool.info",
		PoolArgs:   []int{-2, -1, -1},
		PoolPath:   "IMAGE_POOL.IMAGE",
		InfoMethod: "one.image.info",
	},
	Templates: {
		Title: "VM Templates",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 2},
			{Key: "OWNER", Title: "OWNER", Path: "UNAME", FlexFactor: 1},
			{Key: "GROUP", Title: "GROUP", Path: "GNAME", FlexFactor: 1},
		},
		PoolMethod: "one.templatepool.info",
		PoolArgs:   []int{-2, -1, -1},
		PoolPath:   "VMTEMPLATE_POOL.VMTEMPLATE",
		InfoMethod: "one.template.info",
	},
	Clusters: {
		Title: "Clusters",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 1},
			{Key: "HOSTS", Title: "HOSTS", Path: "HOSTS.ID", Format: FormatCount, Width: 6},
			{Key: "DATASTORES", Title: "DATASTORES", Path: "DATASTORES.ID", Format: FormatCount, Width: 11},
			{Key: "VNETS", Title: "VNETS", Path: "VNETS.ID", Format: FormatCount, Width: 6},
		},
		PoolMethod: "one.clusterpool.info",
		PoolPath:   "CLUSTER_POOL.CLUSTER",
		InfoMethod: "one.cluster.info",
	},
	Users: {
		Title: "Users",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 1},
			{Key: "GROUP", Title: "GROUP", Path: "GNAME", FlexFactor: 1},
			{Key: "AUTH", Title: "AUTH", Path: "AUTH_DRIVER", Width: 10},
			{Key: "ENABLED", Title: "ENABLED", Path: "ENABLED", Width: 8},
		},
		PoolMethod: "one.userpool.info",
		PoolPath:   "USER_POOL.USER",
		InfoMethod: "one.user.info",
	},
	Groups: {
		Title: "Groups",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 1},
			{Key: "USERS", Title: "USERS", Path: "USERS.ID", Format: FormatCount, Width: 6},
		},
		PoolMethod: "one.grouppool.info",
		PoolPath:   "GROUP_POOL.GROUP",
		InfoMethod: "one.group.info",
	},
	Zones: {
		Title: "Zones",
		Columns: []Column{
			{Key: "ID", Title: "ID", Path: "ID", Width: 6},
			{Key: "NAME", Title: "NAME", Path: "NAME", FlexFactor: 1},
			{Key: "ENDPOINT", Title: "ENDPOINT", Path: "TEMPLATE.ENDPOINT", FlexFactor: 2},
		},
		PoolMethod: "one.zonepool.info",
		PoolPath:   "ZONE_POOL.ZONE",
		InfoMethod: "one.zone.info",
	},
}
