package model

// Setting is a single key/value pair in the generic application settings
// store.  The core treats values as opaque strings; known keys include
// key_location, team_passcode, admin_passcode and the car_* metadata
// fields edited on the car details page.
type Setting struct {
    Key   string `json:"key"`   // app_settings.key
    Value string `json:"value"` // app_settings.value
}
