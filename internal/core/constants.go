package core

// File names
const (
	// ConfigName is the featsweep configuration filename, looked up in
	// the working directory (next to the Cargo.toml it describes).
	ConfigName = "featsweep.yml"
)

// Defaults applied to a loaded config before validation.
const (
	// DefaultGroup is the feature-group key holding the individually
	// testable flags. The leading underscore follows the cargo
	// convention for internal-only feature groups.
	DefaultGroup = "_all-features"
	// DefaultTool is the verification tool binary.
	DefaultTool = "cargo"
	// DefaultSubcommand is the verification subcommand run per flag.
	DefaultSubcommand = "clippy"
	// DefaultManifest is the manifest path read in offline mode.
	DefaultManifest = "Cargo.toml"
)

// Metadata provider invocation. The format version is pinned so a cargo
// upgrade cannot silently change the schema under us.
const (
	MetadataSubcommand    = "metadata"
	MetadataFormatVersion = "1"
)

// Arguments of every verification invocation.
const (
	// NoDefaultFeaturesArg disables the package's default feature set so
	// the baseline plus one flag is exactly what gets built.
	NoDefaultFeaturesArg = "--no-default-features"
	// FeaturesArg introduces the combined feature-selection value. The
	// tool accepts the option once, so baseline and flag are joined into
	// a single comma-separated value.
	FeaturesArg = "--features"
	// FeatureSeparator joins baseline flags and the flag under test.
	FeatureSeparator = ","
)

// Verbose controls whether provider invocations are echoed in addition
// to the normal per-flag command lines.
var Verbose = false
