// Package demo provides the scripted mock meeting the UI plays back when no
// live audio source is available.
package demo

import "meetsense/internal/model"

var script = []model.TranscriptEntry{
	{Timestamp: "00:02.150", Speaker: "Speaker 1", Text: "Let's discuss scalability."},
	{Timestamp: "00:07.820", Speaker: "Speaker 2", Text: "Sure. The API layer is stateless, so we can scale it horizontally behind the load balancer."},
	{Timestamp: "00:15.440", Speaker: "Speaker 1", Text: "What about the database? That's usually where things fall over."},
	{Timestamp: "00:21.030", Speaker: "Speaker 2", Text: "We'd add read replicas first. Sharding is a last resort, the write volume doesn't justify it yet."},
	{Timestamp: "00:30.560", Speaker: "Speaker 1", Text: "Okay. I'll take an action to benchmark the replica lag before sprint planning."},
	{Timestamp: "00:37.910", Speaker: "Speaker 2", Text: "On monitoring, we still only have the default dashboards. No alerting on queue depth."},
	{Timestamp: "00:45.280", Speaker: "Speaker 1", Text: "Right, that's a gap. Can you own setting up the alerts this week?"},
	{Timestamp: "00:49.700", Speaker: "Speaker 2", Text: "Yes, I'll wire the queue depth and error rate alerts into the on-call rotation."},
	{Timestamp: "00:58.130", Speaker: "Speaker 1", Text: "Good. We're out of time, let's pick up security review in the next session."},
}

// Transcript returns the scripted demo meeting. Callers get a fresh copy each
// call, so appending it to a session never aliases the script.
func Transcript() []model.TranscriptEntry {
	return append([]model.TranscriptEntry(nil), script...)
}
