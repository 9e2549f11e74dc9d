// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration shared by the lcmp command and its
// internal packages.
package types

// InstagramConfig locates the connection lists inside an extracted Instagram
// data export folder.
type InstagramConfig struct {
	// ConnectionsDir is the folder-relative directory holding the lists,
	// slash separated (default "connections/followers_and_following").
	ConnectionsDir string `json:"connections_dir" yaml:"connections_dir"`

	// FollowersFile is the first followers part (default "followers_1.html").
	// Exports with many followers split the list into followers_2.html and
	// onwards; those parts are read after it.
	FollowersFile string `json:"followers_file" yaml:"followers_file"`

	// FollowingFile is the following list (default "following.html").
	FollowingFile string `json:"following_file" yaml:"following_file"`

	// Target is the list compared when two export folders are given:
	// followers or following (default followers).
	Target string `json:"target" yaml:"target"`
}

// Config is the effective configuration of one lcmp invocation.
type Config struct {
	// Method is AA, AX or XA (default XA).
	Method string `json:"method" yaml:"method"`

	// MaxBufferBytes bounds the identifier store of the set document.
	// Zero means no limit.
	MaxBufferBytes int `json:"max_buffer_bytes" yaml:"max_buffer_bytes"`

	// Verbose enables debug tracing on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`

	Instagram InstagramConfig `json:"instagram" yaml:"instagram"`
}

// Defaults for Config.
const (
	DefaultMethod         = "XA"
	DefaultConnectionsDir = "connections/followers_and_following"
	DefaultFollowersFile  = "followers_1.html"
	DefaultFollowingFile  = "following.html"
	DefaultTarget         = "followers"
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Method: DefaultMethod,
		Instagram: InstagramConfig{
			ConnectionsDir: DefaultConnectionsDir,
			FollowersFile:  DefaultFollowersFile,
			FollowingFile:  DefaultFollowingFile,
			Target:         DefaultTarget,
		},
	}
}
