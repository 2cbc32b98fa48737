package service

import "time"

// ZoneCatalog は既知のタイムゾーンIDの読み取り専用集合です
// プロセス起動時に一度だけ構築され、以降は変更されません
type ZoneCatalog interface {
	// Lookup はIDに完全一致(大文字小文字を区別)するゾーンのLocationを返します
	Lookup(id string) (*time.Location, bool)

	// IDs は昇順に並んだ全ゾーンIDのコピーを返します
	IDs() []string

	// Len はゾーン数を返します
	Len() int
}
