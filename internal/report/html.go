package report

import (
	"fmt"
	"html/template"
	"strings"
)

// HTML renders a self-contained dashboard page.
func (r *Renderer) HTML(run Run) (string, error) {
	view := htmlView{
		Generated:    run.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
		LookbackDays: run.LookbackDays,
		Summary:      run.Summary,
	}
	for _, n := range run.Narratives {
		view.TotalSignals += len(n.Evidence)
		card := narrativeCard{
			Name:       n.Name,
			Strength:   n.Strength,
			Confidence: fmt.Sprintf("%.0f", n.Confidence),
			Momentum:   capitalize(n.Momentum),
			Why:        n.Why,
			Highlights: firstN(n.Highlights, 6),
		}
		for _, k := range sortedKeys(n.KeyMetrics) {
			if v := n.KeyMetrics[k]; v > 0 {
				card.Metrics = append(card.Metrics, metricRow{Name: titleCase(k), Value: formatMetric(v)})
			}
		}
		for _, idea := range firstN(n.Ideas, 3) {
			card.Ideas = append(card.Ideas, ideaCard{
				Name:        idea.Name,
				Description: idea.Description,
				TechStack:   strings.Join(idea.TechStack, ", "),
				Timeline:    idea.TimelineEstimate,
				Revenue:     idea.RevenueModel,
			})
		}
		for _, s := range firstN(n.Evidence, 5) {
			card.Signals = append(card.Signals, signalRow{Source: s.Source, Title: s.Title, URL: s.URL})
		}
		view.Narratives = append(view.Narratives, card)
	}
	if run.Market != nil {
		view.Market = fmt.Sprintf("%s $%.2f (%+.2f%% 24h)", run.Market.Symbol, run.Market.Price, run.Market.PriceChange24h)
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return b.String(), nil
}

type htmlView struct {
	Generated    string
	LookbackDays int
	TotalSignals int
	Market       string
	Summary      string
	Narratives   []narrativeCard
}

type narrativeCard struct {
	Name       string
	Strength   int
	Confidence string
	Momentum   string
	Why        string
	Highlights []string
	Metrics    []metricRow
	Ideas      []ideaCard
	Signals    []signalRow
}

type metricRow struct {
	Name  string
	Value string
}

type ideaCard struct {
	Name        string
	Description string
	TechStack   string
	Timeline    string
	Revenue     string
}

type signalRow struct {
	Source string
	Title  string
	URL    string
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Solana Narrative Radar</title>
<style>
:root {
  --purple: #9945FF; --green: #14F195; --blue: #00D1FF;
  --bg: #0a0a0f; --card: #12121a; --text: #ffffff; --muted: #8888a0; --border: #2a2a3a;
}
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, 'Segoe UI', sans-serif; background: var(--bg); color: var(--text); line-height: 1.6; }
.container { max-width: 1100px; margin: 0 auto; padding: 24px; }
.hero { background: linear-gradient(135deg, rgba(153,69,255,.15), rgba(0,209,255,.15)); border: 1px solid var(--border); border-radius: 16px; padding: 32px; margin-bottom: 24px; }
.hero h1 { font-size: 2.2rem; background: linear-gradient(135deg, var(--green), var(--blue), var(--purple)); -webkit-background-clip: text; -webkit-text-fill-color: transparent; }
.hero p { color: var(--muted); margin-top: 8px; }
.summary { background: var(--card); border: 1px solid var(--border); border-radius: 12px; padding: 20px; margin-bottom: 24px; color: var(--muted); }
.card { background: var(--card); border: 1px solid var(--border); border-radius: 12px; padding: 24px; margin-bottom: 20px; }
.card h2 { color: var(--green); margin-bottom: 8px; }
.stats { color: var(--muted); font-size: .9rem; margin-bottom: 12px; }
.bar { background: var(--border); border-radius: 4px; height: 8px; margin: 8px 0 16px; }
.bar-fill { background: linear-gradient(90deg, var(--purple), var(--green)); border-radius: 4px; height: 8px; }
.why { margin-bottom: 16px; white-space: pre-line; }
h3 { color: var(--blue); font-size: 1rem; margin: 16px 0 8px; }
ul { margin-left: 20px; color: var(--muted); }
.idea { border-left: 3px solid var(--purple); padding-left: 12px; margin: 12px 0; }
.idea b { color: var(--text); }
.idea p { color: var(--muted); font-size: .9rem; }
a { color: var(--blue); text-decoration: none; }
.src { color: var(--purple); font-family: monospace; font-size: .85rem; }
</style>
</head>
<body>
<div class="container">
  <div class="hero">
    <h1>Solana Narrative Radar</h1>
    <p>Generated {{.Generated}} &middot; Past {{.LookbackDays}} days &middot; {{.TotalSignals}} signals{{if .Market}} &middot; {{.Market}}{{end}}</p>
  </div>
  {{if .Summary}}<div class="summary">{{.Summary}}</div>{{end}}
  {{range .Narratives}}
  <div class="card">
    <h2>{{.Name}}</h2>
    <div class="stats">Strength {{.Strength}}/100 &middot; Confidence {{.Confidence}}% &middot; Momentum {{.Momentum}}</div>
    <div class="bar"><div class="bar-fill" style="width: {{.Strength}}%"></div></div>
    <div class="why">{{.Why}}</div>
    {{if .Highlights}}<h3>Key Evidence</h3><ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{if .Metrics}}<h3>On-Chain Metrics</h3><ul>{{range .Metrics}}<li>{{.Name}}: {{.Value}}</li>{{end}}</ul>{{end}}
    {{if .Ideas}}<h3>Build Ideas</h3>
    {{range .Ideas}}<div class="idea"><b>{{.Name}}</b><p>{{.Description}}</p><p>{{.TechStack}} &middot; {{.Timeline}} &middot; {{.Revenue}}</p></div>{{end}}
    {{end}}
    <h3>Top Signals</h3>
    <ul>{{range .Signals}}<li><span class="src">{{.Source}}</span> <a href="{{.URL}}">{{.Title}}</a></li>{{end}}</ul>
  </div>
  {{end}}
</div>
</body>
</html>
`))
