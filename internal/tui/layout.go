package tui

import "strings"

type pageLayout struct {
	sidebarWidth  int
	contentWidth  int
	contentHeight int
}

func newPageLayout() pageLayout {
	return pageLayout{
		sidebarWidth:  sidebarWidth,
		contentWidth:  80,
		contentHeight: 20,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.sidebarWidth = sidebarWidth
	const contentPadding = 4
	inner := width - l.sidebarWidth - contentPadding
	if inner < minContentWidth {
		inner = minContentWidth
	}
	l.contentWidth = inner
	const chrome = 2
	usable := height - statusBarHeight - chrome
	if usable < 12 {
		usable = 12
	}
	l.contentHeight = usable
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
