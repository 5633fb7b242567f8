package statebuffer

//nolint:revive // Pointless to comment the colors.
const (
	// ANSI color codes for terminal output.

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	// Reset resets the terminal's color settings.
	Reset = "\x1b[0m"
)

// DefaultMetadataColors returns a map of metadata tags to their default ANSI
// color codes, chosen so state, measurement, and synthesized entries are easy
// to tell apart in a buffer dump.
func DefaultMetadataColors() map[Metadata]string {
	return map[Metadata]string{
		MetadataMeasurement: Green,
		MetadataState:       Blue,
		MetadataInit:        Cyan,
		MetadataOutOfOrder:  Yellow,
		MetadataAutoAdd:     Magenta,
	}
}

// ColorConfig holds color-related configuration for buffer dumps.
type ColorConfig struct {
	// Enable enables colored output
	Enable bool
	// ForceTTY forces colored output even when the writer is not a terminal
	ForceTTY bool
	// MetadataColors maps metadata tags to their ANSI color codes
	MetadataColors map[Metadata]string
}

// DefaultColorConfig returns the default color configuration: colors enabled
// when the destination is a terminal, with the default metadata palette.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Enable:         true,
		ForceTTY:       false,
		MetadataColors: DefaultMetadataColors(),
	}
}
