// Package output provides structured output and error handling for the
// healthnote CLI.
//
// # Printer
//
// Every command reports through a Printer, which switches between a
// human-readable console log and a single JSON document:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY).WithStderr(cmd.ErrOrStderr())
//
//	printer.Banner("🏥 Health Auto Export → Obsidian Converter")
//	printer.Step("Processing 2024-01-15...", true, "")
//	printer.Warn("no workout data for %s", date)
//	printer.Done("🎉 Done! Converted %d files.", n)
//
// Banner, Step and Done are human-only. In JSON mode warnings are held
// back and the command embeds Warnings() in its result document.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success, including batches with failed files
//	output.ExitUserError   // 1: bad flags, missing export folder, no exports
//	output.ExitSystemError // 2: malformed export, vault write failure
//
// Use the error constructors so the code travels with the error:
//
//	output.NewUserErrorWithCause("no health exports found", err)
//	output.NewSystemErrorWithCause("writing note failed", err)
package output
