// Package cli is the dothis command-line front end.
//
// It turns arguments into sync calls and renders the response as tables:
//
//	dothis [flags] list [tasks|projects|labels|notes|project_notes|filters|reminders]
//	dothis [flags] add project NAME [-color C] [-parent ID]
//	dothis [flags] add task CONTENT [-project ID] [-priority N] [-due TEXT]
//	dothis [flags] add label NAME [-color C]
//	dothis [flags] delete KIND ID
//	dothis [flags] shell
//	dothis [flags] version
//
// The default command is "list tasks". Exit status is 64 for usage errors and
// 69 when the server could not be reached or refused the request.
// See Run for the entry point and runREPL for the interactive shell.
package cli
