// Package catalog は蔵書カタログとレビュー台帳を提供します。
package catalog

// Book は蔵書1冊を表します。
// ISBNが識別キーで、Reviews 以外のフィールドは起動時に確定し変更されません。
// Reviews はユーザー名からレビュー本文への対応で、1ユーザーにつき最大1件です。
type Book struct {
	ISBN    string            `json:"isbn"`
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Reviews map[string]string `json:"reviews"`
}
