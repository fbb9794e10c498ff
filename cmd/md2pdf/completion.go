package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	md2pdf "github.com/alnah/md2pdf-themes"
	"github.com/alnah/md2pdf-themes/internal/pipeline"
	"github.com/alnah/md2pdf-themes/internal/theme"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, e.g. "*.yaml,*.yml"
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Subcommands []string
	Args        []string // fixed positional values
	FilePattern string   // glob for file arguments (e.g., "*.md,*.markdown")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   func() []string // enum values
	FileGlob string          // file glob pattern
	IsDir    bool            // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"page-size":  {Values: md2pdf.PageSizes},
	"code-style": {Values: pipeline.CodeStyles},
	"theme":      {Values: theme.BuiltinNames},

	"config": {FileGlob: "*.yaml,*.yml"},
	"css":    {FileGlob: "*.css"},
	"output": {FileGlob: "*.pdf"},

	"themes-dir": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert markdown files to PDF",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:        "theme",
			Desc:        "List, show or create themes",
			Flags:       extractFlagsFromFlagSet(newThemeFlagSet(&themeFlags{})),
			Subcommands: []string{"list", "show", "create"},
		},
		{
			Name:  "doctor",
			Desc:  "Check the system for PDF generation",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{})),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)},
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// commandNames returns the names of every command, in registry order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder
	cmds := getCommands()

	switch shell {
	case ShellBash:
		writeBash(&b, cmds)
	case ShellZsh:
		writeZsh(&b, cmds)
	case ShellFish:
		writeFish(&b, cmds)
	case ShellPowerShell:
		writePowerShell(&b, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// globExtensions turns "*.yaml,*.yml" into ["yaml", "yml"].
func globExtensions(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(g), "*."))
	}
	return exts
}

// flagWords returns every spelling of the flags, long ones first.
func flagWords(flags []flagDef) []string {
	var long, short []string
	for _, f := range flags {
		long = append(long, "--"+f.Long)
		if f.Short != "" {
			short = append(short, "-"+f.Short)
		}
	}
	sort.Strings(short)
	return append(long, short...)
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func writeBash(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# bash completion for md2pdf\n")
	b.WriteString("_md2pdf() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Subcommands) == 0 && len(c.Args) == 0 && c.FilePattern == "" {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		writeBashValueCases(b, c.Flags)

		if len(c.Flags) > 0 {
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(flagWords(c.Flags), " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}

		switch {
		case len(c.Subcommands) > 0:
			b.WriteString("        if [[ $COMP_CWORD -eq 2 ]]; then\n")
			fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Subcommands, " "))
			b.WriteString("        fi\n")
		case len(c.Args) > 0:
			fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Args, " "))
		case c.FilePattern != "":
			fmt.Fprintf(b, "        COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n",
				strings.Join(globExtensions(c.FilePattern), "|"))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("shopt -s extglob 2>/dev/null\n")
	b.WriteString("complete -F _md2pdf md2pdf\n")
}

// writeBashValueCases completes the value of the flag before the cursor.
func writeBashValueCases(b *strings.Builder, flags []flagDef) {
	var cases []string
	for _, f := range flags {
		if f.Type == flagBool {
			continue
		}
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}

		var action string
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf("COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\"))",
				strings.Join(globExtensions(f.FileGlob), "|"))
		case flagDir:
			action = "COMPREPLY=($(compgen -d -- \"$cur\"))"
		default:
			action = "COMPREPLY=()"
		}
		cases = append(cases, fmt.Sprintf("        %s) %s; return ;;\n", pattern, action))
	}
	if len(cases) == 0 {
		return
	}

	b.WriteString("        case \"$prev\" in\n")
	for _, c := range cases {
		b.WriteString("    " + c)
	}
	b.WriteString("        esac\n")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func writeZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef md2pdf\n\n")
	b.WriteString("_md2pdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=$words[2]\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $cmd in\n")

	for _, c := range cmds {
		specs := zshSpecs(c)
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		b.WriteString("        _arguments -s \\\n")
		for i, s := range specs {
			b.WriteString("            " + s)
			if i < len(specs)-1 {
				b.WriteString(" \\")
			}
			b.WriteString("\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2pdf md2pdf\n")
}

// zshSpecs returns the _arguments entries of a command.
func zshSpecs(c commandDef) []string {
	var specs []string
	for _, f := range c.Flags {
		desc := "[" + zshEscape(f.Desc) + "]"
		value := zshValue(f)

		if f.Short == "" {
			specs = append(specs, fmt.Sprintf("'--%s%s%s'", f.Long, desc, value))
			continue
		}
		specs = append(specs, fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, value))
	}

	switch {
	case len(c.Subcommands) > 0:
		specs = append(specs, fmt.Sprintf("'1:subcommand:(%s)'", strings.Join(c.Subcommands, " ")))
	case len(c.Args) > 0:
		specs = append(specs, fmt.Sprintf("'1:shell:(%s)'", strings.Join(c.Args, " ")))
	case c.FilePattern != "":
		specs = append(specs, fmt.Sprintf("'*:file:_files -g \"*.(%s)\"'", strings.Join(globExtensions(c.FilePattern), "|")))
	}
	return specs
}

// zshValue returns the value part of an _arguments entry.
func zshValue(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		return fmt.Sprintf(":file:_files -g \"*.(%s)\"", strings.Join(globExtensions(f.FileGlob), "|"))
	case flagDir:
		return ":directory:_files -/"
	default:
		return ":value: "
	}
}

var zshReplacer = strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)

func zshEscape(s string) string {
	return zshReplacer.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func writeFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for md2pdf\n")
	b.WriteString("complete -c md2pdf -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c md2pdf -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_seen_subcommand_from %s'", c.Name)
		if len(c.Flags) > 0 || len(c.Subcommands) > 0 || len(c.Args) > 0 || c.FilePattern != "" {
			b.WriteString("\n")
		}

		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c md2pdf %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString, flagInt:
				line += " -x"
			}
			b.WriteString(line + "\n")
		}

		switch {
		case len(c.Subcommands) > 0:
			fmt.Fprintf(b, "complete -c md2pdf %s -a '%s'\n", cond, strings.Join(c.Subcommands, " "))
		case len(c.Args) > 0:
			fmt.Fprintf(b, "complete -c md2pdf %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.FilePattern != "":
			for _, ext := range globExtensions(c.FilePattern) {
				fmt.Fprintf(b, "complete -c md2pdf %s -a '(__fish_complete_suffix .%s)'\n", cond, ext)
			}
		}
	}
}

var fishReplacer = strings.NewReplacer(`\`, `\\`, "'", `\'`)

func fishEscape(s string) string {
	return fishReplacer.Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func writePowerShell(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# PowerShell completion for md2pdf\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName md2pdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	fmt.Fprintf(b, "    $candidates = %s\n", psArray(commandNames(cmds)))
	b.WriteString("    if ($words.Count -gt 2 -or ($words.Count -eq 2 -and -not $wordToComplete)) {\n")
	b.WriteString("        switch ($words[1]) {\n")
	for _, c := range cmds {
		words := append(flagWords(c.Flags), c.Subcommands...)
		words = append(words, c.Args...)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(b, "            '%s' { $candidates = %s }\n", c.Name, psArray(words))
	}
	b.WriteString("            default { $candidates = @() }\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

func psArray(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + strings.ReplaceAll(w, "'", "''") + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2pdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2pdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(md2pdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2pdf completion fish > ~/.config/fish/completions/md2pdf.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    md2pdf completion powershell | Out-String | Invoke-Expression")
}
