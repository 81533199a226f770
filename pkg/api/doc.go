// Package api exposes QR generation over HTTP with a chi router.
//
// POST /api/generate takes a JSON body with a "type" and the fields of that
// type (ssid, password, url, vcardName, geoLat and so on) plus an optional
// "style" object of overrides. It answers with the PNG inline, named after
// the payload, or with {data, captionLines, filename, image} when called
// with ?format=json. POST /api/save stores the PNG through a storage
// backend and returns its URL.
//
// Bind errors answer 400, 413 or 415, validation errors answer 400 with a
// "fields" map and rendering failures answer 500 with a generic message.
// Every request gets an X-Request-ID that is attached to log records.
package api
