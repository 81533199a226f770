// Package payload turns typed user input into QR code content.
//
// Each content type (Wi-Fi credentials, links, text, contact cards, email,
// SMS, phone and map locations) is a value type implementing Payload. Encode
// renders the exact string scanners expect:
//
//	WIFI:S:home;T:WPA;P:secret;H:false;;
//	BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jane\r\n...\r\nEND:VCARD
//	mailto:a@b.com?subject=Hi+there
//	sms:+123?body=Call%20me
//	tel:+123
//	geo:52.52,13.4
//
// Build combines the encoded data with the caption lines to print under the
// code and a file-safe name:
//
//	res := payload.Build(payload.Wifi{SSID: "home", Password: "secret"})
//	// res.Data == "WIFI:S:home;T:WPA;P:secret;H:false;;"
//	// res.CaptionLines == []string{"Network: home", "Password: secret"}
//	// res.Filename == "home"
//
// Encoders never validate. Callers that accept raw input should run
// Normalize and Validate first; Validate reports validator.ValidationErrors
// keyed by the request field names used by the HTTP API.
package payload
