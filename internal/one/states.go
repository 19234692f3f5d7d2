package one

import "fmt"

// State code tables as published by OpenNebula. Items carry the formatted
// label so views never deal in raw codes.

// vmStateActive is the VM state whose LCM sub-state is the interesting
// part.
const vmStateActive = 3

var vmStateLabels = map[int]string{
	0:  "INIT",
	1:  "PENDING",
	2:  "HOLD",
	3:  "ACTIVE",
	4:  "STOPPED",
	5:  "SUSPENDED",
	6:  "DONE",
	8:  "POWEROFF",
	9:  "UNDEPLOYED",
	10: "CLONING",
	11: "CLONING_FAILURE",
}

var lcmStateLabels = map[int]string{
	0:  "LCM_INIT",
	1:  "PROLOG",
	2:  "BOOT",
	3:  "RUNNING",
	4:  "MIGRATE",
	5:  "SAVE_STOP",
	6:  "SAVE_SUSPEND",
	7:  "SAVE_MIGRATE",
	8:  "PROLOG_MIGRATE",
	9:  "PROLOG_RESUME",
	10: "EPILOG_STOP",
	11: "EPILOG",
	12: "SHUTDOWN",
	14: "CLEANUP_RESUBMIT",
	15: "UNKNOWN",
	16: "HOTPLUG",
	17: "SHUTDOWN_POWEROFF",
	18: "BOOT_UNKNOWN",
	19: "BOOT_POWEROFF",
	20: "BOOT_SUSPENDED",
	21: "BOOT_STOPPED",
	22: "CLEANUP_DELETE",
	23: "HOTPLUG_SNAPSHOT",
	24: "HOTPLUG_NIC",
	25: "HOTPLUG_SAVEAS",
	26: "HOTPLUG_SAVEAS_POWEROFF",
	27: "HOTPLUG_SAVEAS_SUSPENDED",
	28: "SHUTDOWN_UNDEPLOY",
	29: "EPILOG_UNDEPLOY",
	30: "PROLOG_UNDEPLOY",
	31: "BOOT_UNDEPLOY",
	32: "HOTPLUG_PROLOG_POWEROFF",
	33: "HOTPLUG_EPILOG_POWEROFF",
	34: "BOOT_MIGRATE",
	35: "BOOT_FAILURE",
	36: "BOOT_MIGRATE_FAILURE",
	37: "PROLOG_MIGRATE_FAILURE",
	38: "PROLOG_FAILURE",
	39: "EPILOG_FAILURE",
	40: "EPILOG_STOP_FAILURE",
	41: "EPILOG_UNDEPLOY_FAILURE",
	42: "PROLOG_MIGRATE_POWEROFF",
	43: "PROLOG_MIGRATE_POWEROFF_FAILURE",
	44: "PROLOG_MIGRATE_SUSPEND",
	45: "PROLOG_MIGRATE_SUSPEND_FAILURE",
	46: "BOOT_UNDEPLOY_FAILURE",
	47: "BOOT_STOPPED_FAILURE",
	48: "PROLOG_RESUME_FAILURE",
	49: "PROLOG_UNDEPLOY_FAILURE",
	50: "DISK_SNAPSHOT_POWEROFF",
	51: "DISK_SNAPSHOT_REVERT_POWEROFF",
	52: "DISK_SNAPSHOT_DELETE_POWEROFF",
	53: "DISK_SNAPSHOT_SUSPENDED",
	54: "DISK_SNAPSHOT_REVERT_SUSPENDED",
	55: "DISK_SNAPSHOT_DELETE_SUSPENDED",
	56: "DISK_SNAPSHOT",
	57: "DISK_SNAPSHOT_REVERT",
	58: "DISK_SNAPSHOT_DELETE",
	59: "PROLOG_MIGRATE_UNKNOWN",
	60: "PROLOG_MIGRATE_UNKNOWN_FAILURE",
	61: "DISK_RESIZE",
	62: "DISK_RESIZE_POWEROFF",
	63: "DISK_RESIZE_UNDEPLOYED",
	64: "HOTPLUG_NIC_POWEROFF",
	65: "HOTPLUG_RESIZE",
	66: "HOTPLUG_SAVEAS_UNDEPLOYED",
	67: "HOTPLUG_SAVEAS_STOPPED",
	68: "BACKUP",
	69: "BACKUP_POWEROFF",
}

var hostStateLabels = map[int]string{
	0: "INIT",
	1: "MONITORING_MONITORED",
	2: "MONITORED",
	3: "ERROR",
	4: "DISABLED",
	5: "MONITORING_ERROR",
	6: "MONITORING_INIT",
	7: "MONITORING_DISABLED",
	8: "OFFLINE",
}

var imageStateLabels = map[int]string{
	0:  "INIT",
	1:  "READY",
	2:  "USED",
	3:  "DISABLED",
	4:  "LOCKED",
	5:  "ERROR",
	6:  "CLONE",
	7:  "DELETE",
	8:  "USED_PERS",
	9:  "LOCKED_USED",
	10: "LOCKED_USED_PERS",
}

var datastoreStateLabels = map[int]string{
	0: "READY",
	1: "DISABLED",
}

// VMStateLabel formats a VM state code. ACTIVE VMs are usually shown with
// their LCM label instead; see LCMStateLabel.
func VMStateLabel(code int) string {
	return label(vmStateLabels, code)
}

// LCMStateLabel formats the lifecycle sub-state of an ACTIVE VM.
func LCMStateLabel(code int) string {
	if l, ok := lcmStateLabels[code]; ok {
		return l
	}
	return fmt.Sprintf("LCM_UNKNOWN(%d)", code)
}

// HostStateLabel formats a host state code.
func HostStateLabel(code int) string {
	return label(hostStateLabels, code)
}

// ImageStateLabel formats an image state code.
func ImageStateLabel(code int) string {
	return label(imageStateLabels, code)
}

// DatastoreStateLabel formats a datastore state code.
func DatastoreStateLabel(code int) string {
	return label(datastoreStateLabels, code)
}

func label(table map[int]string, code int) string {
	if l, ok := table[code]; ok {
		return l
	}
	return fmt.Sprintf("UNKNOWN(%d)", code)
}
