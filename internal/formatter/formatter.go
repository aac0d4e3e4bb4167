// Package formatter turns raw status-update text into HTML-safe,
// link-annotated markup. It is pure: no I/O, no shared state.
package formatter

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// DefaultBugTrackerURL はプロジェクトがバグトラッカーを指定しない場合の既定値
const DefaultBugTrackerURL = "https://bugzilla.mozilla.org"

// ProjectContext はリンク解決に必要なプロジェクト情報のサブセット。
// BugTrackerURL が空の場合は DefaultBugTrackerURL が使われる。
type ProjectContext struct {
	RepoURL       string
	BugTrackerURL string
}

var (
	// タグは # の直後が英字で、以降は英数字のみ。先頭が数字（#1）や
	// 記号（#.abc）のトークンはタグとして扱わない。URL のフラグメントを
	// 誤検出しないよう、直前が英数字・アンダースコア・スラッシュの場合も除外する。
	tagRe = regexp.MustCompile(`(?:^|[^0-9A-Za-z_/])(#[A-Za-z][A-Za-z0-9]*)`)
	// "pull #1", "pr 2" など。# は省略可、語は大文字小文字を区別しない。
	pullRe = regexp.MustCompile(`(?i)\b(?:pull|pr) #?([0-9]+)`)
	// "bug #3", "BUg 4" など。
	bugRe = regexp.MustCompile(`(?i)\bbug #?([0-9]+)`)
)

// segment は変換途中のテキスト断片。rendered=true の断片は確定済みの
// マークアップで、以降のルールの走査対象にならない（エスケープもされない）。
type segment struct {
	text     string
	rendered bool
}

// Format は生のステータス本文を、そのまま HTML に埋め込める
// リンク付きマークアップへ変換する。全ての入力文字列に対して停止し、
// 失敗しない。認識されないパターンはエスケープされたリテラルとして残る。
//
// 変換ルールは固定順（タグ → pull/pr → bug）で適用される。各ルールは
// まだリテラルの断片だけを左から右へ一度だけ走査するため、挿入済みの
// マークアップが後続ルールに再マッチすることはない。
func Format(content string, project ProjectContext) string {
	segs := []segment{{text: content}}

	segs = apply(segs, tagRe, 1, func(m match) string {
		tag := m.group(1)
		return fmt.Sprintf(`<span class="tag tag-%s">%s</span> %s`,
			strings.ToLower(tag[1:]), tag, tag)
	})

	if project.RepoURL != "" {
		repo := html.EscapeString(project.RepoURL)
		segs = apply(segs, pullRe, 0, func(m match) string {
			return fmt.Sprintf(`<a href="%s/pull/%s">%s</a>`, repo, m.group(1), m.group(0))
		})
	}

	tracker := project.BugTrackerURL
	if tracker == "" {
		tracker = DefaultBugTrackerURL
	}
	tracker = html.EscapeString(tracker)
	segs = apply(segs, bugRe, 0, func(m match) string {
		return fmt.Sprintf(`<a href="%s/show_bug.cgi?id=%s">%s</a>`, tracker, m.group(1), m.group(0))
	})

	var b strings.Builder
	for _, seg := range segs {
		if seg.rendered {
			b.WriteString(seg.text)
		} else {
			b.WriteString(html.EscapeString(seg.text))
		}
	}
	return b.String()
}

// match は 1 件のマッチのサブマッチ群へのアクセスを提供する
type match struct {
	text string
	loc  []int
}

// group は n 番目のサブマッチの文字列を返す（未マッチなら空文字列）
func (m match) group(n int) string {
	start, end := m.loc[2*n], m.loc[2*n+1]
	if start < 0 {
		return ""
	}
	return m.text[start:end]
}

// apply は 1 つの置換ルールを全てのリテラル断片に適用する。
// group はマッチ全体のうち実際に置き換えるサブマッチの番号
// （タグルールは先行境界文字を残すために 0 以外を使う）。
// 置換結果は rendered な断片として凍結され、後続ルールから除外される。
func apply(segs []segment, re *regexp.Regexp, group int, render func(match) string) []segment {
	out := make([]segment, 0, len(segs))
	for _, seg := range segs {
		if seg.rendered {
			out = append(out, seg)
			continue
		}
		locs := re.FindAllStringSubmatchIndex(seg.text, -1)
		if len(locs) == 0 {
			out = append(out, seg)
			continue
		}
		last := 0
		for _, loc := range locs {
			start, end := loc[2*group], loc[2*group+1]
			if start < 0 {
				continue
			}
			if start > last {
				out = append(out, segment{text: seg.text[last:start]})
			}
			out = append(out, segment{
				text:     render(match{text: seg.text, loc: loc}),
				rendered: true,
			})
			last = end
		}
		if last < len(seg.text) {
			out = append(out, segment{text: seg.text[last:]})
		}
	}
	return out
}
