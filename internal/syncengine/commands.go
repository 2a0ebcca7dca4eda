package syncengine

import (
	"context"
	"fmt"

	"github.com/joe/proxy-panel/internal/gateway"
)

// Start asks the remote to begin a scan. It reports false, without contacting
// the remote, when a start is already pending.
//
// On acceptance the message becomes MsgStartAccepted and status is refreshed
// once. A rejection shows the remote's reason (MsgAlreadyRunning when it gave
// none). A transport failure shows "Unable to start scan: <cause>".
func (e *Engine) Start(ctx context.Context, payload gateway.StartPayload) bool {
	accepted, err := e.runCommand(ctx, CommandStart, &e.startGuard, commandText{
		success:         MsgStartAccepted,
		conflictDefault: MsgAlreadyRunning,
		failurePrefix:   "Unable to start scan",
	}, func(ctx context.Context) (string, error) {
		return e.gateway.Start(ctx, payload)
	})
	if accepted && err == nil {
		e.RefreshStatus(ctx)
	}

	return accepted
}

// Stop asks the remote to stop the running scan. It mirrors Start, with
// MsgStopAccepted, MsgNotRunning and "Unable to stop scan: <cause>".
func (e *Engine) Stop(ctx context.Context) bool {
	accepted, err := e.runCommand(ctx, CommandStop, &e.stopGuard, commandText{
		success:         MsgStopAccepted,
		conflictDefault: MsgNotRunning,
		failurePrefix:   "Unable to stop scan",
	}, e.gateway.Stop)
	if accepted && err == nil {
		e.RefreshStatus(ctx)
	}

	return accepted
}

// CopyProxy copies proxy to the clipboard and reports the outcome in the status message.
func (e *Engine) CopyProxy(proxy string) {
	if e.Clipboard == nil || !e.Clipboard.Available() {
		e.setMessage(MsgClipboardUnavailable, ErrClipboardUnavailable)
		return
	}

	if err := e.Clipboard.WriteAll(proxy); err != nil {
		e.logToFile(fmt.Sprintf("Copy failed: %v", err))
		e.setMessage(MsgCopyFailed, err)

		return
	}

	e.setMessage("Copied "+proxy, nil)
}

// ExportResults writes the current results to dest and reports the outcome in
// the status message. It returns the exporter's error, if any.
func (e *Engine) ExportResults(dest string) error {
	if e.Exporter == nil {
		e.setMessage(exportFailure(ErrNoExporter), ErrNoExporter)
		return ErrNoExporter
	}

	rows := e.Snapshot().Results

	err := e.Exporter.Export(dest, rows)
	if err != nil {
		e.setMessage(exportFailure(err), err)
		return fmt.Errorf("export to %s: %w", dest, err)
	}

	e.setMessage(fmt.Sprintf("Exported %d results to %s", len(rows), dest), nil)

	return nil
}

type commandText struct {
	success         string
	conflictDefault string
	failurePrefix   string
}

// runCommand submits call under guard. accepted is false when the guard was
// already pending; err is the command's outcome otherwise.
func (e *Engine) runCommand(
	ctx context.Context,
	kind CommandKind,
	guard *commandGuard,
	text commandText,
	call func(context.Context) (string, error),
) (accepted bool, err error) {
	release, ok := guard.TryAcquire()
	if !ok {
		e.logToFile(fmt.Sprintf("Ignored %s: already pending", kind))
		e.emit(CommandIgnored{Kind: kind})

		return false, nil
	}

	defer func() {
		release()
		e.emit(CommandFinished{Kind: kind, Err: err})
		e.notifyStateChange()
	}()

	e.setMessage("", nil)
	e.emit(CommandStarted{Kind: kind})
	e.logToFile(fmt.Sprintf("Submitting %s", kind))

	_, err = call(ctx)

	switch {
	case err == nil:
		e.setMessage(text.success, nil)
	case gateway.IsConflict(err):
		reason := gateway.ConflictReason(err)
		if reason == "" {
			reason = text.conflictDefault
		}

		e.setMessage(reason, err)
	default:
		e.setMessage(fmt.Sprintf("%s: %v", text.failurePrefix, err), err)
	}

	return true, err
}

func exportFailure(err error) string {
	return fmt.Sprintf("Unable to export results: %v", err)
}
