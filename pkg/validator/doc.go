// Package validator provides small composable validation rules.
//
// A Rule is a deferred check plus the error to report. Apply runs a list of
// rules and returns ValidationErrors, which implements error, for the ones
// that failed:
//
//	err := validator.Apply(
//		validator.RequiredString("ssid", in.SSID),
//		validator.InList("encryption", in.Encryption, payload.Encryptions),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		// ve.Map() == map[string][]string{"ssid": {"field is required"}}
//	}
//
// Each ValidationError carries a translation key and values next to the
// English message.
package validator
