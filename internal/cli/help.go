package cli

import "github.com/ecomdemo/shopctl/internal/output"

const commandWidth = 22

func printHelp(out *output.Writer) {
	out.HelpTitle("shopctl " + Version + " - e-commerce demo service harness")
	out.Println("")
	out.HelpUsage("shopctl [flags] <command> [args]")

	out.HelpSection("Commands:")
	out.HelpCommand("install [service...]", "Install Python versions and dependencies", commandWidth)
	out.HelpCommand("test [service...]", "Run test suites and print a summary", commandWidth)
	out.HelpCommand("services", "List configured services", commandWidth)
	out.HelpCommand("doctor", "Check the environment and project setup", commandWidth)
	out.HelpCommand("compose", "Generate a docker-compose file", commandWidth)
	out.HelpCommand("test-summary <file>", "Parse a saved test log", commandWidth)
	out.HelpCommand("config validate", "Validate .shopctl/config.json", commandWidth)
	out.HelpCommand("version", "Print the shopctl version", commandWidth)
	out.HelpCommand("help", "Show this help", commandWidth)

	out.HelpSection("Flags:")
	out.HelpFlag("-q, --quiet", "Suppress informational output", commandWidth)
	out.HelpFlag("-v, --verbose", "Show commands as they run", commandWidth)

	out.HelpSection("Examples:")
	out.HelpExample("shopctl install", "Set up all services")
	out.HelpExample("shopctl test", "Run every suite, continue past failures")
	out.HelpExample("shopctl test payment-gateway --keep-logs", "Run one suite, keep its log")
}

func printInstallHelp(out *output.Writer) {
	out.HelpTitle("shopctl install - set up Python versions and dependencies")
	out.Println("")
	out.HelpUsage("shopctl install [service...]")
	out.Println("")
	out.Println("For each service in order: ensures the pinned Python version is")
	out.Println("installed via pyenv, pins it locally, and installs the declared")
	out.Println("packages with pip. Stops at the first failure.")
}

func printTestHelp(out *output.Writer) {
	out.HelpTitle("shopctl test - run service test suites")
	out.Println("")
	out.HelpUsage("shopctl test [flags] [service...]")

	out.HelpSection("Flags:")
	out.HelpFlag("--keep-logs", "Keep per-service test_output.log files", commandWidth)

	out.Println("")
	out.Println("Runs pytest for each service in order. A failing service does not")
	out.Println("stop the run; the summary at the end covers all of them. Exits")
	out.Println("non-zero if any service failed.")
}

func printServicesHelp(out *output.Writer) {
	out.HelpTitle("shopctl services - list configured services")
	out.Println("")
	out.HelpUsage("shopctl services")
}

func printDoctorHelp(out *output.Writer) {
	out.HelpTitle("shopctl doctor - check environment and project setup")
	out.Println("")
	out.HelpUsage("shopctl doctor")
}

func printComposeHelp(out *output.Writer) {
	out.HelpTitle("shopctl compose - generate a docker-compose file")
	out.Println("")
	out.HelpUsage("shopctl compose [-o <file>]")

	out.HelpSection("Flags:")
	out.HelpFlag("-o, --output <file>", "Write to <file> instead of the configured path", commandWidth)
}

func printTestSummaryHelp(out *output.Writer) {
	out.HelpTitle("shopctl test-summary - parse a saved test log")
	out.Println("")
	out.HelpUsage("shopctl test-summary <file>")
	out.HelpUsage("shopctl test-summary -")
	out.Println("")
	out.Println("Reads pytest output from a file (or stdin with -) and prints the")
	out.Println("parsed counts. Exits non-zero if the log records failures.")
}

func printConfigHelp(out *output.Writer) {
	out.HelpTitle("shopctl config - configuration commands")
	out.Println("")
	out.HelpUsage("shopctl config validate")
}
