// Package templates renders the catalog's HTML views as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

// html accumulates writes and keeps the first error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
}

// Layout wraps body in the shared page chrome.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><style>`)
		h.raw(styles)
		h.raw(`</style></head><body><header class="bar"><a href="/" class="brand">Anand Pharma</a>`)
		h.raw(`<nav><a href="/">Catalog</a><a href="/admin">Admin</a></nav></header><main>`)
		h.component(ctx, body)
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// ErrorAlert renders an operator-facing error with its support code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="alert alert-error" role="alert"><strong>`)
		h.text(message)
		h.raw(`</strong>`)
		if action != "" {
			h.raw(`<p>`)
			h.text(action)
			h.raw(`</p>`)
		}
		if code != "" {
			h.raw(`<small>Code: `)
			h.text(code)
			h.raw(`</small>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}

// CatalogData is everything the catalog page shows.
type CatalogData struct {
	Criteria   core.Criteria
	Page       core.Page
	Products   []core.ProductView
	Categories []string
	Companies  []string
	Source     core.Source
	Window     []int
}

// CatalogPage renders the filter form, product grid and pager.
func CatalogPage(d CatalogData) templ.Component {
	return Layout("Product Catalog", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}

		h.raw(`<section class="filters"><form method="get" action="/">`)
		h.raw(`<input type="search" name="q" placeholder="Search products or companies" value="`)
		h.text(d.Criteria.Search)
		h.raw(`">`)
		selectBox(h, "category", core.AllCategories, d.Categories, d.Criteria.Category)
		selectBox(h, "company", core.AllCompanies, d.Companies, d.Criteria.Company)
		hidden(h, "prev_q", d.Criteria.Search)
		hidden(h, "prev_category", d.Criteria.Category)
		hidden(h, "prev_company", d.Criteria.Company)
		h.raw(`<button type="submit">Filter</button></form></section>`)

		h.raw(`<p class="summary">`)
		if d.Page.TotalCount == 0 {
			h.raw(`No products found`)
		} else {
			h.rawf(`Showing %d-%d of %d products`, d.Page.First, d.Page.Last, d.Page.TotalCount)
		}
		if d.Source == core.SourceSeed {
			h.raw(` <span class="badge">sample data</span>`)
		}
		h.raw(`</p>`)

		h.raw(`<section class="grid">`)
		for _, p := range d.Products {
			productCard(h, p)
		}
		h.raw(`</section>`)

		pager(h, d)
		return h.err
	}))
}

func productCard(h *html, p core.ProductView) {
	h.raw(`<article class="card"><span class="badge category">`)
	h.text(p.Category)
	h.raw(`</span>`)
	if p.SpecialOffer {
		h.raw(`<span class="badge offer">Special Offer</span>`)
	}
	h.raw(`<h3>`)
	h.text(p.Name)
	h.raw(`</h3><p class="company">`)
	h.text(p.Company)
	h.raw(`</p>`)
	if p.DisplayUnit != "" {
		h.raw(`<p class="unit">`)
		h.text(p.DisplayUnit)
		h.raw(`</p>`)
	}
	if p.Promotion {
		h.raw(`<p class="promo">Limited time promotional offer</p>`)
	}
	h.raw(`</article>`)
}

func selectBox(h *html, name, sentinel string, options []string, selected string) {
	h.rawf(`<select name="%s">`, name)
	option(h, sentinel, selected == "" || selected == sentinel)
	for _, o := range options {
		option(h, o, o == selected)
	}
	h.raw(`</select>`)
}

func option(h *html, value string, selected bool) {
	h.raw(`<option value="`)
	h.text(value)
	h.raw(`"`)
	if selected {
		h.raw(` selected`)
	}
	h.raw(`>`)
	h.text(value)
	h.raw(`</option>`)
}

func hidden(h *html, name, value string) {
	h.rawf(`<input type="hidden" name="%s" value="`, name)
	h.text(value)
	h.raw(`">`)
}

// PageLink builds the catalog URL for page n under criteria c. The prev_*
// values equal the current criteria so following the link keeps page n.
func PageLink(c core.Criteria, n int) string {
	q := url.Values{}
	for _, kv := range [][2]string{
		{"q", c.Search},
		{"category", c.Category},
		{"company", c.Company},
	} {
		if kv[1] != "" {
			q.Set(kv[0], kv[1])
			q.Set("prev_"+kv[0], kv[1])
		}
	}
	q.Set("page", strconv.Itoa(n))
	return "/?" + q.Encode()
}

func pager(h *html, d CatalogData) {
	if d.Page.TotalPages <= 1 {
		return
	}
	h.raw(`<nav class="pager">`)
	if d.Page.Page > 1 {
		link(h, PageLink(d.Criteria, d.Page.Page-1), "Previous", false)
	}
	for _, n := range d.Window {
		link(h, PageLink(d.Criteria, n), strconv.Itoa(n), n == d.Page.Page)
	}
	if d.Page.Page < d.Page.TotalPages {
		link(h, PageLink(d.Criteria, d.Page.Page+1), "Next", false)
	}
	h.raw(`</nav>`)
}

func link(h *html, href, label string, current bool) {
	h.raw(`<a href="`)
	h.text(href)
	h.raw(`"`)
	if current {
		h.raw(` class="current" aria-current="page"`)
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}

// AdminData configures the operator page.
type AdminData struct {
	PrimaryReady bool
	WriteTarget  core.Source
	MaxFileSize  int64
}

// AdminPage renders the operator login and upload forms. The upload form
// posts with fetch so the password travels in the X-Admin-Password header.
func AdminPage(d AdminData) templ.Component {
	return Layout("Admin - Upload Products", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="admin"><h1>Upload Products</h1><p class="summary">Uploads go to `)
		h.text(d.WriteTarget.StorageLabel())
		if !d.PrimaryReady {
			h.raw(` <span class="badge">database not configured</span>`)
		}
		h.raw(`</p>`)
		h.raw(`<form id="upload" enctype="multipart/form-data">`)
		h.raw(`<label>Password <input type="password" name="password" required></label>`)
		h.raw(`<label>Spreadsheet <input type="file" name="file" accept=".xlsx,.xls,.csv" required></label>`)
		h.rawf(`<small>Columns: PRODUCT, UNIT, COMPANY FULL NAME. Max %d MB.</small>`, d.MaxFileSize/(1024*1024))
		h.raw(`<button type="submit">Upload</button></form><div id="result"></div></section>`)
		h.raw(`<script>`)
		h.raw(adminScript)
		h.raw(`</script>`)
		return h.err
	}))
}

const adminScript = `
document.getElementById("upload").addEventListener("submit", async (ev) => {
  ev.preventDefault();
  const form = ev.target;
  const out = document.getElementById("result");
  const body = new FormData();
  body.append("file", form.file.files[0]);
  out.textContent = "Uploading...";
  const res = await fetch("/api/admin/upload", {
    method: "POST",
    headers: {"X-Admin-Password": form.password.value, "Accept": "application/json"},
    body,
  });
  const data = await res.json();
  out.className = res.ok ? "alert alert-ok" : "alert alert-error";
  out.textContent = res.ok ? data.message : data.message + " (" + data.code + ")";
  if (res.ok) form.file.value = "";
});
`

const styles = `
body{font-family:system-ui,sans-serif;margin:0;background:#f6f8fa;color:#1f2328}
.bar{display:flex;justify-content:space-between;padding:1rem 2rem;background:#0b6e4f;color:#fff}
.bar a{color:#fff;text-decoration:none;margin-left:1rem}.brand{font-weight:700;margin-left:0}
main{max-width:1200px;margin:0 auto;padding:1.5rem}
.filters form{display:flex;gap:.5rem;flex-wrap:wrap}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:1rem}
.card{background:#fff;border-radius:8px;padding:1rem;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.badge{display:inline-block;font-size:.75rem;padding:.1rem .5rem;border-radius:999px;background:#e7f5ef}
.offer{background:#fff3cd}.promo{color:#9a6700;font-size:.85rem}
.pager{display:flex;gap:.25rem;justify-content:center;margin:1.5rem 0}
.pager a{padding:.35rem .7rem;border-radius:4px;background:#fff;text-decoration:none}
.pager a.current{background:#0b6e4f;color:#fff}
.alert{padding:1rem;border-radius:6px;margin:1rem 0}.alert-error{background:#ffebe9}.alert-ok{background:#dafbe1}
.admin form{display:flex;flex-direction:column;gap:.75rem;max-width:420px}
`
