// Package companion is the watch's link to its phone-side settings app.
//
// A running watch serves a small gin router:
//
//	GET  /api/health   liveness and counters
//	POST /api/config   one configuration message as a JSON object
//	GET  /ws           WebSocket; each text frame is one configuration message
//
// Every accepted message is acknowledged with an Ack and handed to the Sink.
// Malformed messages are logged and acknowledged negatively; they never
// reach the Sink. The endpoint is advertised over mDNS as _fuzzyplus._tcp so
// the push client can find it with Scanner.Discover.
package companion
