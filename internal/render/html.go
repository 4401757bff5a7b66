package render

import (
	"html/template"
	"io"

	"reviews_carousel/internal/domain"
)

// Page is the data for the full widget markup.
type Page struct {
	Snapshot
	Theme      domain.Transition
	UsingDummy bool
}

var pageTmpl = template.Must(template.New("widget").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(widgetHTML))

func WriteHTML(w io.Writer, p Page) error {
	return pageTmpl.Execute(w, p)
}

const widgetHTML = `<!DOCTYPE html>
<html lang="en" class="theme-{{.Theme.Theme}}" data-theme="{{.Theme.Theme}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Customer reviews</title>
</head>
<body>
<section class="reviews-carousel" role="region" aria-label="Customer reviews">
  <header class="reviews-summary">
    <span id="averageRating">{{printf "%.1f" .Summary.AverageRating}}</span>
    <span id="averageStars" aria-hidden="true">{{.Summary.Stars}}</span>
    <span id="totalCount">{{.Summary.Count}}</span> reviews{{if .UsingDummy}} <em>(sample data)</em>{{end}}
  </header>
  {{- if .Loading}}
  <div id="loadingIndicator" class="loading active" aria-live="polite">Loading reviews…</div>
  {{- end}}
  {{- if .Error}}
  <div id="errorMessage" class="error-message active" role="alert"><span id="errorText">{{.Error}}</span>
    <form method="post" action="/v1/reviews/refresh"><button id="retryBtn" type="submit">Retry</button></form>
  </div>
  {{- end}}
  <div id="reviewsWrapper" class="reviews-wrapper">
  {{- range .Cards}}
    <article class="review-card">
      <div class="review-header">
        <img src="{{.AvatarURL}}" alt="{{.Author}}" class="reviewer-avatar" loading="lazy">
        <div class="reviewer-info">
          <div class="reviewer-name">{{.Author}}</div>
          <div class="review-meta">
            <span class="review-rating" aria-label="{{.Rating}} out of 5">{{.Stars}}</span>
            <span class="review-time">{{.Posted}}</span>
          </div>
        </div>
      </div>
      <p class="review-text">{{.Body}}</p>
    </article>
  {{- end}}
  </div>
  <nav class="carousel-nav">
    <form method="post" action="/v1/reviews/previous"><button id="prevBtn" class="carousel-btn" type="submit"{{if not .PrevEnabled}} disabled{{end}}>Previous</button></form>
    <div id="carouselIndicators" class="indicators">
    {{- range .Indicators}}
      <form method="post" action="/v1/reviews/pages/{{.Index}}"><button class="indicator{{if .Active}} active{{end}}" type="submit" aria-label="Page {{inc .Index}}"{{if .Active}} aria-current="page"{{end}}></button></form>
    {{- end}}
    </div>
    <form method="post" action="/v1/reviews/next"><button id="nextBtn" class="carousel-btn" type="submit"{{if not .NextEnabled}} disabled{{end}}>Next</button></form>
  </nav>
</section>
</body>
</html>
`
