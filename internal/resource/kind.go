package resource

// Kind enumerates the browsable resource pools. The set is closed; the
// registry covers every member.
type Kind int

const (
	Vms Kind = iota
	Hosts
	Datastores
	VNets
	Images
	Templates
	Clusters
	Users
	Groups
	Zones
)

// Kinds lists every kind in registry order.
func Kinds() []Kind {
	return []Kind{
		Vms,
		Hosts,
		Datastores,
		VNets,
		Images,
		Templates,
		Clusters,
		Users,
		Groups,
		Zones,
	}
}

func (k Kind) String() string {
	return [...]string{
		"one-vms",
		"one-hosts",
		"one-datastores",
		"one-vnets",
		"one-images",
		"one-templates",
		"one-clusters",
		"one-users",
		"one-groups",
		"one-zones",
	}[k]
}
