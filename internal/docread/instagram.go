// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docread

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mblucasm/lcmp/pkg/types"
)

// ErrNotExport reports a folder name that does not follow the Instagram
// export naming scheme.
var ErrNotExport = errors.New("not an Instagram export folder name")

// Export describes an Instagram data export from its folder name,
// instagram-USERNAME-YYYY-MM-DD-ID.
type Export struct {
	Username string
	Date     time.Time
	ID       string
}

var exportName = regexp.MustCompile(`^instagram-(.+)-(\d{4}-\d{2}-\d{2})-([^-]+)$`)

// ParseExportName parses the base name of an export folder.
func ParseExportName(dir string) (Export, error) {
	base := path.Base(normalize(dir))
	m := exportName.FindStringSubmatch(base)
	if m == nil {
		return Export{}, errors.Wrapf(ErrNotExport, "%q", base)
	}
	date, err := time.Parse(time.DateOnly, m[2])
	if err != nil {
		return Export{}, errors.Wrapf(ErrNotExport, "%q: bad date %s", base, m[2])
	}
	return Export{Username: m[1], Date: date, ID: m[3]}, nil
}

// Paths holds the files making up each side of an Instagram comparison.
// Followers may span several parts.
type Paths struct {
	Followers []string
	Following string
}

// InstagramPaths resolves the followers and following lists inside dir.
// Backslash separators in dir are accepted. The first followers part is
// always listed so a missing file fails at open; later parts
// (followers_2.html, ...) are included while they exist.
func InstagramPaths(dir string, cfg types.InstagramConfig) Paths {
	cfg = withDefaults(cfg)
	base := path.Join(normalize(dir), normalize(cfg.ConnectionsDir))
	first := filepath.FromSlash(path.Join(base, cfg.FollowersFile))
	p := Paths{
		Followers: []string{first},
		Following: filepath.FromSlash(path.Join(base, cfg.FollowingFile)),
	}

	prefix, n, ext, ok := splitPart(cfg.FollowersFile)
	if !ok {
		return p
	}
	for i := n + 1; ; i++ {
		next := filepath.FromSlash(path.Join(base, fmt.Sprintf("%s%d%s", prefix, i, ext)))
		if _, err := os.Stat(next); err != nil {
			break
		}
		p.Followers = append(p.Followers, next)
	}
	return p
}

// For returns the files holding the target list.
func (p Paths) For(t Target) []string {
	if t == Following {
		return []string{p.Following}
	}
	return p.Followers
}

// Target selects one connection list of an export.
type Target int

const (
	Followers Target = iota
	Following
)

// ParseTarget parses "followers" or "following".
func ParseTarget(s string) (Target, error) {
	switch s {
	case "followers":
		return Followers, nil
	case "following":
		return Following, nil
	}
	return 0, fmt.Errorf("unknown target %q: use followers or following", s)
}

func (t Target) String() string {
	if t == Following {
		return "following"
	}
	return "followers"
}

// TreeError reports a missing piece of an export folder.
type TreeError struct {
	Path string
	Dir  bool
}

func (e *TreeError) Error() string {
	kind := "file"
	if e.Dir {
		kind = "subfolder"
	}
	return fmt.Sprintf("couldn't find %s '%s' (%s)", kind, filepath.Base(e.Path), e.Path)
}

// CheckTree verifies that dir holds the connections subfolders, the
// following list and the first followers part, reporting the first level
// that is missing.
func CheckTree(dir string, cfg types.InstagramConfig) error {
	cfg = withDefaults(cfg)
	cur := normalize(dir)
	for _, seg := range strings.Split(normalize(cfg.ConnectionsDir), "/") {
		if seg == "" || seg == "." {
			continue
		}
		cur = path.Join(cur, seg)
		if info, err := os.Stat(filepath.FromSlash(cur)); err != nil || !info.IsDir() {
			return &TreeError{Path: filepath.FromSlash(cur), Dir: true}
		}
	}
	for _, name := range []string{cfg.FollowingFile, cfg.FollowersFile} {
		p := filepath.FromSlash(path.Join(cur, name))
		if info, err := os.Stat(p); err != nil || !info.Mode().IsRegular() {
			return &TreeError{Path: p}
		}
	}
	return nil
}

func withDefaults(cfg types.InstagramConfig) types.InstagramConfig {
	def := types.DefaultConfig().Instagram
	if cfg.ConnectionsDir == "" {
		cfg.ConnectionsDir = def.ConnectionsDir
	}
	if cfg.FollowersFile == "" {
		cfg.FollowersFile = def.FollowersFile
	}
	if cfg.FollowingFile == "" {
		cfg.FollowingFile = def.FollowingFile
	}
	return cfg
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		return trimmed
	}
	return p
}

// splitPart splits "followers_1.html" into "followers_", 1 and ".html".
func splitPart(name string) (prefix string, n int, ext string, ok bool) {
	ext = path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	i := strings.LastIndexByte(stem, '_')
	if i < 0 {
		return "", 0, "", false
	}
	n, err := strconv.Atoi(stem[i+1:])
	if err != nil {
		return "", 0, "", false
	}
	return stem[:i+1], n, ext, true
}
