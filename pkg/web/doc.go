// Package web integrates htmlkit rendering with net/http.
//
// Respond and Handler are thin adapters that render content and write
// it as a text/html response; they carry no logic of their own.
//
// PreviewServer serves a directory of generated HTML during
// development, with websocket-based live reload, Prometheus request
// metrics and OpenTelemetry tracing.
package web
