package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration (info)
		"Extracting frames from %s":            "%s からフレームを抽出中",
		"Extracted %d frames spanning %.1f ms": "%d フレームを抽出しました (%.1f ms)",
		"Computing histograms":                 "ヒストグラムを計算中",
		"Summary saved to %s":                  "サマリーを %s に保存しました",
		"Extraction completed":                 "抽出が完了しました",
		"Interrupted, shutting down...":        "中断されました。シャットダウン中...",

		// Timeline component (debug)
		"Scanning %d trace events from %s":                       "トレースイベント %d 件を走査中 (%s)",
		"Found %d screenshots, %d before time origin, %d duplicates": "スクリーンショット %d 件 (時間原点より前 %d 件, 重複 %d 件)",
		"Extracted %d frames between %.3f ms and %.3f ms":        "%d フレームを抽出しました (%.3f ms から %.3f ms)",

		// Histogram component (debug)
		"Computing %d histograms with %d workers": "%d 件のヒストグラムを %d ワーカーで計算中",
		"Histograms completed":                    "ヒストグラムの計算が完了しました",

		// Warnings
		"Failed to save debug frame %d: %s":   "デバッグフレーム %d の保存に失敗しました: %s",
		"Failed to encode timeline JSON: %s":  "タイムラインJSONのエンコードに失敗しました: %s",
		"Failed to save timeline JSON: %s":    "タイムラインJSONの保存に失敗しました: %s",
		"Failed to encode histograms JSON: %s": "ヒストグラムJSONのエンコードに失敗しました: %s",
		"Failed to save histograms JSON: %s":  "ヒストグラムJSONの保存に失敗しました: %s",

		// Errors
		"Extraction failed: %s":     "抽出に失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
	})
}
