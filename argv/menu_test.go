package argv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func goldenParser() (*Parser, *bytes.Buffer) {
	var out bytes.Buffer
	p := NewParser("filetool", "Copies and transforms files.")
	p.UnsetFlags(ExitOnHelp | ExitOnVersion | ColoredOutput)
	p.IO().WithOut(&out).WithWidth(80)
	p.OnExit(func(int) {})

	p.AddHelpArgument("-h", "--help")
	p.AddKeyArgument("-v", "--verbose").SetDescription("enable verbose output")
	p.AddKeyValueArgument("--count", "-c").
		SetDescription("number of copies to make").
		SetValueNames("n")
	p.AddVersionArgument("2.1.0", "--version")
	p.AddPositionalArgument("source").SetDescription("file to copy")
	return p, &out
}

func TestHelpMenuGolden(t *testing.T) {
	p, out := goldenParser()
	p.PrintHelp()

	g := goldie.New(t)
	g.Assert(t, "help_main", out.Bytes())
}

func TestHelpMenuHidesHiddenEntries(t *testing.T) {
	p, out := goldenParser()
	p.AddKeyArgument("--secret").SetDescription("internal switch").SetFlags(Hidden)

	p.PrintHelp()

	if strings.Contains(out.String(), "--secret") {
		t.Errorf("hidden entries must not render:\n%s", out.String())
	}
}

func TestHelpMenuWrapsLongDescriptions(t *testing.T) {
	var out bytes.Buffer
	p := NewParser("prog", "")
	p.UnsetFlags(ColoredOutput)
	p.IO().WithOut(&out).WithWidth(50)
	p.AddKeyArgument("-v").SetDescription(strings.Repeat("word ", 20))

	p.PrintHelp()

	for _, line := range strings.Split(out.String(), "\n") {
		if len(line) > 50 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestMenuEntryManagement(t *testing.T) {
	p, _ := goldenParser()
	m := p.AddHelpMenu("extra")
	a := p.Arg("-v")

	m.AddEntry(a).AddEntry(a)
	if len(m.Entries()) != 1 {
		t.Errorf("duplicate entries must collapse, got %d", len(m.Entries()))
	}

	m.RemoveEntry(a)
	if len(m.Entries()) != 0 {
		t.Error("entry not removed")
	}
}
