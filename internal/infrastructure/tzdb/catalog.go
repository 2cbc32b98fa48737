package tzdb

import (
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
	// ホストにzoneinfoが無い環境でもNewCatalogとtime.LoadLocationを動かすため
	_ "time/tzdata"
)

// ErrNoSource は利用可能なタイムゾーンDBが見つからないことを表します
var ErrNoSource = errors.New("no time zone database found")

// tzifMagic はTZifファイルの先頭4バイトです
var tzifMagic = []byte("TZif")

// DefaultSources はタイムゾーンDBの探索順を返します
// time.LoadLocationと同じくOS標準ディレクトリ、$GOROOT/lib/time/zoneinfo.zip の順で探索します
// extra (ZONEINFO) が指定されている場合は最優先で探索します
func DefaultSources(extra string) []string {
	var sources []string
	if extra != "" {
		sources = append(sources, extra)
	}
	sources = append(sources,
		"/usr/share/zoneinfo",
		"/usr/share/lib/zoneinfo",
		"/usr/lib/locale/TZ",
		"/etc/zoneinfo",
	)
	if root := goroot(); root != "" {
		sources = append(sources, filepath.Join(root, "lib", "time", "zoneinfo.zip"))
	}
	return sources
}

func goroot() string {
	if root := os.Getenv("GOROOT"); root != "" {
		return root
	}
	return runtime.GOROOT() //nolint:staticcheck // ビルド時のGOROOTをフォールバックに使う
}

// Catalog はservice.ZoneCatalogのインメモリ実装です
// 構築後は変更されないため、ロックなしで並行に読み取れます
type Catalog struct {
	locations map[string]*time.Location
	ids       []string
	source    string
	version   string
	modTime   time.Time
}

// NewCatalog は指定IDのみを含むCatalogを作成します
// Goに組み込まれたtzdataで解決するため、テスト用の小さな集合の構築に使います
func NewCatalog(ids ...string) (*Catalog, error) {
	locations := make(map[string]*time.Location, len(ids))
	for _, id := range ids {
		loc, err := time.LoadLocation(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load zone %q: %w", id, err)
		}
		locations[id] = loc
	}
	return newCatalog(locations, "embedded", "", time.Time{}), nil
}

// Load はsourcesを順に探索し、最初に見つかったタイムゾーンDBからCatalogを構築します
// ソースはzoneinfoディレクトリまたはzoneinfo.zip形式のファイルです
func Load(sources ...string) (*Catalog, error) {
	for _, source := range sources {
		info, err := os.Stat(source)
		if err != nil {
			continue
		}

		var catalog *Catalog
		if info.IsDir() {
			catalog, err = LoadDir(source)
		} else {
			catalog, err = LoadZip(source)
		}
		if err != nil {
			slog.Warn("failed to load time zone database", "source", source, "error", err)
			continue
		}
		if catalog.Len() == 0 {
			slog.Warn("time zone database is empty", "source", source)
			continue
		}
		return catalog, nil
	}
	return nil, fmt.Errorf("%w (searched: %s)", ErrNoSource, strings.Join(sources, ", "))
}

// LoadDir はzoneinfoディレクトリからCatalogを構築します
func LoadDir(dir string) (*Catalog, error) {
	locations := make(map[string]*time.Location)
	var latest time.Time

	err := walkZoneFiles(dir, func(id, path string, info fs.FileInfo) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if loc, ok := parseZone(id, data); ok {
			locations[id] = loc
			if info.ModTime().After(latest) {
				latest = info.ModTime()
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	return newCatalog(locations, dir, readVersion(filepath.Join(dir, "tzdata.zi")), latest), nil
}

// LoadZip はGo形式のzoneinfo.zipからCatalogを構築します
func LoadZip(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	locations := make(map[string]*time.Location)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !IsZoneID(f.Name) {
			continue
		}
		data, err := readZipEntry(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s in %s: %w", f.Name, path, err)
		}
		if loc, ok := parseZone(f.Name, data); ok {
			locations[f.Name] = loc
		}
	}

	return newCatalog(locations, path, "", info.ModTime()), nil
}

func newCatalog(locations map[string]*time.Location, source, version string, modTime time.Time) *Catalog {
	ids := make([]string, 0, len(locations))
	for id := range locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Catalog{
		locations: locations,
		ids:       ids,
		source:    source,
		version:   version,
		modTime:   modTime,
	}
}

// Lookup はIDに完全一致するゾーンのLocationを返します
func (c *Catalog) Lookup(id string) (*time.Location, bool) {
	loc, ok := c.locations[id]
	return loc, ok
}

// IDs は昇順の全ゾーンIDのコピーを返します
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Len はゾーン数を返します
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Source は読み込み元を返します
func (c *Catalog) Source() string {
	return c.source
}

// Version はtzdataのバージョン (例: "2025b") を返します。不明な場合は空文字です
func (c *Catalog) Version() string {
	return c.version
}

// Health はカタログが利用可能かを確認します (handler.HealthChecker)
func (c *Catalog) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Len() == 0 {
		return errors.New("time zone catalog is empty")
	}
	return nil
}

// Changed は読み込み後にディスク上のタイムゾーンDBが更新されたかを判定します
// 組み込みtzdataから構築したCatalogは常にfalseを返します
func (c *Catalog) Changed() (bool, error) {
	if c.modTime.IsZero() {
		return false, nil
	}

	info, err := os.Stat(c.source)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return info.ModTime().After(c.modTime), nil
	}

	changed := false
	err = walkZoneFiles(c.source, func(id, _ string, info fs.FileInfo) error {
		if _, known := c.locations[id]; !known {
			return nil
		}
		if info.ModTime().After(c.modTime) {
			changed = true
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// walkZoneFiles はdir配下のゾーンファイルを列挙します
// posix/ right/ などの小文字ディレクトリや zone.tab などの付随ファイルは除外します
func walkZoneFiles(dir string, fn func(id, path string, info fs.FileInfo) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if d.IsDir() {
			if !isZoneSegment(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		id := filepath.ToSlash(rel)
		if !IsZoneID(id) {
			return nil
		}

		// シンボリックリンクは参照先で判定する
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil
		}
		return fn(id, path, info)
	})
}

// IsZoneID はIDがIANA形式のゾーン名の字句規則を満たすかを判定します
func IsZoneID(id string) bool {
	if id == "" {
		return false
	}
	for _, segment := range strings.Split(id, "/") {
		if !isZoneSegment(segment) {
			return false
		}
	}
	return true
}

func isZoneSegment(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '+':
		default:
			return false
		}
	}
	return true
}

func parseZone(id string, data []byte) (*time.Location, bool) {
	if !bytes.HasPrefix(data, tzifMagic) {
		return nil, false
	}
	loc, err := time.LoadLocationFromTZData(id, data)
	if err != nil {
		slog.Debug("skipping unreadable zone file", "zone", id, "error", err)
		return nil, false
	}
	return loc, true
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// readVersion はtzdata.ziの先頭行 "# version 2025b" からバージョンを読み取ります
func readVersion(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}
	if version, ok := strings.CutPrefix(scanner.Text(), "# version "); ok {
		return strings.TrimSpace(version)
	}
	return ""
}
