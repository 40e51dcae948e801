// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

/*
Package supervisor runs the long-lived parts of the server under a
suture/v4 supervision tree.

Services are added to one of two layers:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddDataService(services.NewStoreGCService(store, 10*time.Minute, 0.5))
	err = tree.Serve(ctx)

A service that returns an error is restarted. After FailureThreshold
failures (decaying at FailureDecay per second) its supervisor waits
FailureBackoff before restarting it again. Supervisor events (service
failures, backoff, panics) are logged through sutureslog, which writes to
the zerolog logger via logging.NewSlogLogger.

Canceling the context passed to Serve stops every service. Services that
do not return within ShutdownTimeout are reported by
UnstoppedServiceReport.
*/
package supervisor
