package cli

// Message constants
const (
	MsgRedoShort   = "Build a target by running its dofile"
	MsgRedoLong    = "Build each target by locating its dofile (<target>.do, then default<ext>.do, then default.do)\nand running it with a private staging file as $3. The staging file replaces the target only\nwhen the dofile exits 0 and wrote something to it; otherwise the target is left untouched.\nOptions are only read before the first target; use -- before a target starting with '-'."
	MsgRedoExample = `  redo hello.txt                 # Runs hello.txt.do, default.txt.do or default.do
  REDO_VERBOSE=1 redo main.o     # Trace resolution and export REDO_DOFILE_TRACE=1
  redo -- -out                   # Build a target whose name starts with '-'`

	MsgIfChangeShort   = "Record dependencies of the target being built"
	MsgIfChangeLong    = "Record each target as a dependency of $REDO_PARENT in <parent>.prereq.\nMeant to be called from inside a dofile; a name is not repeated when a ledger line\nalready begins with it. Use -- before a target starting with '-'."
	MsgIfChangeExample = `  redo-ifchange main.c util.h    # Inside main.o.do`

	MsgDepsShort   = "Show recorded dependencies"
	MsgDepsLong    = "Print the dependencies recorded in the prereq ledger of each parent target\n(default: $REDO_PARENT). A target without a ledger has no dependencies."
	MsgDepsExample = `  redo-deps main.o               # One dependency per line
  redo-deps --format json app    # Machine readable`

	MsgConfigShort   = "Print the effective configuration"
	MsgConfigLong    = "Print the merged configuration (defaults, config file, environment) as TOML.\nWith -w, write it to ./.redo.toml instead; an existing file is never overwritten."
	MsgConfigExample = `  redo-config                    # Output to stdout
  redo-config -w                 # Write to ./.redo.toml`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, tree, text, json or yaml"
	MsgFlagWrite   = "Write config to ./.redo.toml instead of stdout"

	MsgUnrecognizedProgram = "Usage error: unrecognized program name: %s\n"
)
