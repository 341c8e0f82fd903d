package main

import "flag"

// cliFlags holds the parsed command-line options.
type cliFlags struct {
	PreFile    string
	PostFile   string
	ConfigFile string
	Format     string
	Threshold  float64
}

func parseFlags() cliFlags {
	preFile := flag.String("pre", "", "Path to the baseline (pre-change) capture file.")
	preFileAlias := flag.String("p", "", "Alias for -pre")

	postFile := flag.String("post", "", "Path to the captured (post-change) output file.")
	postFileAlias := flag.String("o", "", "Alias for -post")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	format := flag.String("format", "text", "Output format: text or json.")
	formatAlias := flag.String("f", "", "Alias for -format")

	threshold := flag.Float64("threshold", 0, "Similarity threshold for fuzzy change classification (overrides config file if set).")
	thresholdAlias := flag.Float64("t", 0, "Alias for -threshold")
	flag.Parse()

	// Consolidate alias flags
	if *preFile == "" && *preFileAlias != "" {
		*preFile = *preFileAlias
	}
	if *postFile == "" && *postFileAlias != "" {
		*postFile = *postFileAlias
	}
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}
	if *formatAlias != "" {
		*format = *formatAlias
	}
	if *threshold == 0 && *thresholdAlias != 0 {
		*threshold = *thresholdAlias
	}

	return cliFlags{
		PreFile:    *preFile,
		PostFile:   *postFile,
		ConfigFile: *configFile,
		Format:     *format,
		Threshold:  *threshold,
	}
}
