// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ShellNotFoundId Id = iota + 1
	PathTranslationFailedId
	UnknownPlatformId
	ConfigLoadFailedId
	SpawnFailedId
	SubsystemNotDetectedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // project documentation about the issue
	extLinks []HttpLink  // external links that might be useful for the user
}

// Id returns the catalog identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the entry body.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns links into the project documentation.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// ExtLinks returns links to external references.
func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using the glamour style at stylePath
// ("dark", "light", "notty" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# Shell not found!

The subsystem platform runs every tool command through its own POSIX shell,
but the shell could not be found on PATH.

## Things you can try:
- Run the build from the subsystem's own terminal (MSYS2 MinGW, UCRT64, ...)
- Check that the shell is installed:
~~~
$ pacman -S bash
~~~

- Point the configuration at a shell by name or absolute path:
~~~cue
shell: "C:/msys64/usr/bin/sh.exe"
~~~`,
		extLinks: []HttpLink{"https://www.msys2.org/docs/environments/"},
	}

	pathTranslationFailedIssue = &Issue{
		id: PathTranslationFailedId,
		mdMsg: `
# Path translation failed!

The subsystem installation root is set (MINGW_PREFIX), so the native location of
its shared binary directory must be asked from the path translation helper, and
that failed.

## Things you can try:
- Check that the helper runs from this terminal:
~~~
$ cygpath -w /usr/bin
~~~

- Configure a different helper name or path:
~~~cue
path_translator: "C:/msys64/usr/bin/cygpath.exe"
~~~

- Unset MINGW_PREFIX to fall back to the legacy search paths`,
		extLinks: []HttpLink{"https://www.msys2.org/docs/filesystem-paths/"},
	}

	unknownPlatformIssue = &Issue{
		id: UnknownPlatformId,
		mdMsg: `
# Unknown platform!

The requested platform name is not supported.

## Supported platforms:
- ` + "`auto`" + ` (detect from the host environment)
- ` + "`posix`" + `
- ` + "`win32`" + `
- ` + "`mingw`" + `, ` + "`msys`" + `, ` + "`msys2`",
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be loaded or validated.

## Things you can try:
- Print the path of the file being loaded:
~~~
$ subsys config path
~~~

- Compare it with the defaults:
~~~
$ subsys config dump
~~~

- Check the CUE syntax and the allowed values of each field`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	spawnFailedIssue = &Issue{
		id: SpawnFailedId,
		mdMsg: `
# Failed to start the command!

The shell that runs tool commands could not be started. The command itself
never ran.

## Things you can try:
- Check the configured shell with:
~~~
$ subsys show
~~~

- Make sure the shell is executable and on PATH`,
	}

	subsystemNotDetectedIssue = &Issue{
		id: SubsystemNotDetectedId,
		mdMsg: `
# No subsystem detected

MSYSTEM is not set, so the mingw and msys platforms configure a plain Windows
host instead. This is not an error.

## Things you can try:
- Start the build from an MSYS2 terminal to use the subsystem shell
- Select the msys2 platform to configure the subsystem unconditionally`,
	}

	issues = map[Id]*Issue{
		shellNotFoundIssue.Id():         shellNotFoundIssue,
		pathTranslationFailedIssue.Id(): pathTranslationFailedIssue,
		unknownPlatformIssue.Id():       unknownPlatformIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		spawnFailedIssue.Id():           spawnFailedIssue,
		subsystemNotDetectedIssue.Id():  subsystemNotDetectedIssue,
	}
)

// Values returns every issue in Id order.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id - b.id) })
	return out
}

// Get returns the issue for id, or nil when the catalog has none.
func Get(id Id) *Issue {
	return issues[id]
}
