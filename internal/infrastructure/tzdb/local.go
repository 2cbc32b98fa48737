package tzdb

import (
	"os"
	"strings"

	"github.com/Hiro-mackay/timeserver/internal/domain/valueobject"
)

const localtimePath = "/etc/localtime"

// LocalZone はプロセスのローカルゾーンのIDをカタログから解決します
// TZ環境変数、/etc/localtime のリンク先の順に参照し、IDが特定できない場合はfalseを返します
func (c *Catalog) LocalZone() (valueobject.TimeZone, bool) {
	id := localZoneID(os.LookupEnv, os.Readlink)
	if id == "" {
		return valueobject.TimeZone{}, false
	}

	loc, ok := c.Lookup(id)
	if !ok {
		return valueobject.TimeZone{}, false
	}

	tz, err := valueobject.NewTimeZone(id, loc)
	if err != nil {
		return valueobject.TimeZone{}, false
	}
	return tz, true
}

func localZoneID(lookupEnv func(string) (string, bool), readlink func(string) (string, error)) string {
	if tz, ok := lookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if tz == "" {
			// GoはTZが空文字の場合UTCとして扱う
			return "UTC"
		}
		if strings.HasPrefix(tz, "/") {
			return zoneIDFromPath(tz)
		}
		return tz
	}

	target, err := readlink(localtimePath)
	if err != nil {
		return ""
	}
	return zoneIDFromPath(target)
}

// zoneIDFromPath は ".../zoneinfo/Asia/Tokyo" 形式のパスからIDを取り出します
func zoneIDFromPath(path string) string {
	const marker = "zoneinfo/"
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	id := path[i+len(marker):]
	if !IsZoneID(id) {
		return ""
	}
	return id
}
