// Package types holds the shapes shared by the rds operations.
package types

// ApplyMethod is when a modified parameter takes effect.
type ApplyMethod string

// Enum values for ApplyMethod
const (
	ApplyMethodImmediate     ApplyMethod = "immediate"
	ApplyMethodPendingReboot ApplyMethod = "pending-reboot"
)

// Parameter is a single DB parameter.
type Parameter struct {
	// The name of the parameter.
	ParameterName *string

	// The value of the parameter.
	ParameterValue *string

	Description *string
	Source      *string
	ApplyType   *string
	DataType    *string

	// The valid range of values for the parameter.
	AllowedValues *string

	IsModifiable         *bool
	MinimumEngineVersion *string

	// When the change is applied. Static parameters only support
	// pending-reboot.
	ApplyMethod ApplyMethod
}
