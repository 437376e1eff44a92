package devstate

import "fmt"

// Operation is the class install function a ChangeRequest is submitted under.
type Operation uint32

// PropertyChange alters a device configuration property (DIF_PROPERTYCHANGE).
const PropertyChange Operation = 0x12

func (o Operation) String() string {
	if o == PropertyChange {
		return "property-change"
	}
	return fmt.Sprintf("Operation(0x%x)", uint32(o))
}

// Scope selects which hardware profiles a change applies to.
type Scope uint32

const (
	// ScopeGlobal applies the change to all hardware profiles (DICS_FLAG_GLOBAL).
	ScopeGlobal Scope = 0x1
	// ScopeConfigSpecific applies the change to one hardware profile only
	// (DICS_FLAG_CONFIGSPECIFIC). Never used by this package.
	ScopeConfigSpecific Scope = 0x2
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeConfigSpecific:
		return "config-specific"
	default:
		return fmt.Sprintf("Scope(0x%x)", uint32(s))
	}
}

// ChangeRequest is a property-change request for one device.
type ChangeRequest struct {
	Operation       Operation
	State           State
	Scope           Scope
	HardwareProfile uint32
}

// NewChangeRequest builds the request used for every state change: a
// property change with global scope and no hardware profile.
func NewChangeRequest(s State) *ChangeRequest {
	return &ChangeRequest{
		Operation:       PropertyChange,
		State:           s,
		Scope:           ScopeGlobal,
		HardwareProfile: 0,
	}
}
