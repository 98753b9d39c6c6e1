// ABOUTME: Display-cell width measurement with grapheme-aware segmentation
// ABOUTME: Complements the byte-length engine when real terminal columns matter

package cells

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mauromedda/termflow/pkg/ansi"
)

const cacheSize = 512

// lru caches width measurements for non-ASCII strings. A single mutex
// guards both the map and the recency list; measurement is cheap enough
// that read concurrency is not worth a second locking mode.
type lru struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	cap   int
}

type lruEntry struct {
	key   string
	width int
}

func newLRU(cap int) *lru {
	return &lru{
		items: make(map[string]*list.Element, cap),
		order: list.New(),
		cap:   cap,
	}
}

func (c *lru) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).width, true
}

func (c *lru) put(key string, width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.cap {
		back := c.order.Back()
		if back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, width: width})
}

var widthCache = newLRU(cacheSize)

// Width returns the number of terminal cells s occupies, with escape
// sequences contributing nothing and grapheme clusters measured as
// units, so emoji and East Asian characters count two cells rather than
// their encoded byte length. Use ansi.VisibleLen when the byte-length
// unit is wanted instead.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := compute(s)
	widthCache.put(s, w)
	return w
}

// isPlainASCII reports whether s is printable ASCII (0x20-0x7E) with no
// escape sequences, tabs, or newlines.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func compute(s string) int {
	stripped := ansi.Strip(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, bw, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += clusterWidth(cluster, bw)
		stripped = rest
		state = newState
	}
	return w
}

// clusterWidth measures one grapheme cluster. Single-rune clusters go
// through runewidth, which honors East Asian width settings; multi-rune
// clusters such as ZWJ emoji take the segmenter's own width.
func clusterWidth(cluster string, boundaryWidth int) int {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == len(cluster) {
		return runewidth.RuneWidth(r)
	}
	return boundaryWidth
}
