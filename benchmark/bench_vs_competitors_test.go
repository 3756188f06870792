package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-argv/argv"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
)

// Benchmark a flat option set with a bool switch, an int option and a
// positional. All three libraries parse equivalent command lines.

func newArgvParser() *argv.Parser {
	p := argv.NewParser("bench", "benchmark parser")
	p.UnsetFlags(argv.ColoredOutput | argv.ExitOnHelp | argv.ExitOnVersion)
	p.OnExit(func(int) {})
	p.AddKeyArgument("-v", "--verbose").SetDescription("Verbose output")
	argv.Check[int](p.AddKeyValueArgument("-p", "--port").SetDescription("Server port"))
	p.AddPositionalArgument("input")
	return p
}

func BenchmarkSimpleParse_GoArgv(b *testing.B) {
	p := newArgvParser()
	args := []string{"bench", "--port", "9000", "-v", "in.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Parse(args)
	}
}

func BenchmarkSimpleParse_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "-v", "in.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkSimpleParse_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "-v", "in.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark registration plus one pass, the cost of a short-lived tool that
// builds its parser on every run.

func BenchmarkBuildAndParse_GoArgv(b *testing.B) {
	args := []string{"bench", "--port", "9000", "-v", "in.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := newArgvParser()
		p.Parse(args)
	}
}

// Benchmark grouped short keys against the closest competitor equivalents
// (cobra and urfave also collapse "-ab" style groups).

func BenchmarkGroupedKeys_GoArgv(b *testing.B) {
	p := argv.NewParser("bench", "benchmark parser")
	p.UnsetFlags(argv.ColoredOutput | argv.ExitOnHelp | argv.ExitOnVersion)
	p.OnExit(func(int) {})
	p.AddKeyArgument("-a").SetDescription("first")
	p.AddKeyArgument("-b").SetDescription("second")
	p.AddKeyArgument("-c").SetDescription("third")

	args := []string{"bench", "-abc"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Parse(args)
	}
}

func BenchmarkGroupedKeys_Cobra(b *testing.B) {
	args := []string{"-abc"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().BoolP("aflag", "a", false, "first")
		cmd.Flags().BoolP("bflag", "b", false, "second")
		cmd.Flags().BoolP("cflag", "c", false, "third")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

// Benchmark multi-value consumption, the greedy path.

func BenchmarkMultiValue_GoArgv(b *testing.B) {
	p := argv.NewParser("bench", "benchmark parser")
	p.UnsetFlags(argv.ColoredOutput | argv.ExitOnHelp | argv.ExitOnVersion)
	p.OnExit(func(int) {})
	p.AddKeyValueArgument("--tags").SetMinMax(1, 8)

	args := []string{"bench", "--tags", "a", "b", "c", "d", "e", "f", "g", "h"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Parse(args)
	}
}

func BenchmarkMultiValue_Urfave(b *testing.B) {
	args := []string{"bench",
		"--tag", "a", "--tag", "b", "--tag", "c", "--tag", "d",
		"--tag", "e", "--tag", "f", "--tag", "g", "--tag", "h"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "tag", Usage: "Tags"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
