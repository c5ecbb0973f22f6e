// Package main provides localization for the speedline CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Extraction": "抽出",
		"Histograms": "ヒストグラム",
		"Output":     "出力先",
		"Debug":      "デバッグ",
		"Logging":    "ログ",

		// Commands
		"Extract screenshot frames and histograms from browser traces": "ブラウザトレースからスクリーンショットのフレームとヒストグラムを抽出",
		"Extract the deduplicated screenshot timeline of a trace":       "トレースから重複を除いたスクリーンショットのタイムラインを抽出",
		"Show version information":                                      "バージョン情報を表示",
		"speedline version %s":                                          "speedline バージョン %s",

		// Flags
		"YAML configuration file":                                      "YAML設定ファイル",
		"Time origin in trace microseconds (default: earliest event)":  "時間原点（トレースのマイクロ秒、デフォルト: 最初のイベント）",
		"Express timestamps relative to the time origin":               "タイムスタンプを時間原点からの相対値で表す",
		"Compute per-frame color histograms":                           "フレームごとの色ヒストグラムを計算",
		"Histogram workers (0 = one per CPU)":                          "ヒストグラムのワーカー数（0 = CPUごとに1つ）",
		"Write a Markdown summary to this path":                        "Markdownサマリーの出力先",
		"Save frames and timeline metadata for inspection":             "検査用にフレームとタイムラインのメタデータを保存",
		"Directory for debug output":                                   "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":                         "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                      "すべてのログ出力を抑制",
		"exactly one trace file is required":                           "トレースファイルを1つ指定してください",
		"Ignore pixels whose channels are all at or above this value (0 = disabled)": "全チャンネルがこの値以上のピクセルを無視（0 = 無効）",

		// Frame table
		"timestamp (ms)": "タイムスタンプ (ms)",
		"offset (ms)":    "オフセット (ms)",
		"bytes":          "バイト",

		// Summary labels
		"Frames Summary":      "フレームサマリー",
		"Item":                "項目",
		"Value":               "値",
		"Trace":               "トレース",
		"Start":               "開始",
		"End":                 "終了",
		"Duration":            "期間",
		"Frames":              "フレーム",
		"Total Size":          "合計サイズ",
		"Settings":            "設定",
		"Time Origin":         "時間原点",
		"Earliest event":      "最初のイベント",
		"Relative Timestamps": "相対タイムスタンプ",
		"White Threshold":     "白のしきい値",
		"Disabled":            "無効",
		"Timestamp":           "タイムスタンプ",
		"Offset":              "オフセット",
		"Size":                "サイズ",
		"Mean":                "平均",
		"Yes":                 "はい",
		"No":                  "いいえ",
		"Generated by":        "生成:",
	})
}
