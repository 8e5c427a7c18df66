package platform

// Package platform provides filesystem and OS integration helpers: path
// sanitization, output-path templating, directory management and opening the
// download folder in the system file manager.
