package advisor

import (
	"fmt"
	"strings"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/models"
)

var sectorOutlooks = []string{"強気", "中立", "弱気"}

var sectorCommentaries = []string{
	"堅調な業績が続いており、中期的な成長が期待できます。",
	"市場環境の変化に注意が必要ですが、現状維持が妥当です。",
	"短期的な変動リスクがあるため、慎重な姿勢が求められます。",
	"割安感があり、押し目での買い増しを検討できます。",
}

// mockAnalysis builds a report from local templates. Output varies with
// the service's randomness source only in sector outlook wording; the
// sentiment and score are a pure function of the portfolio figures.
func (s *Service) mockAnalysis(summary *models.PortfolioSummary, news []models.NewsItem) *models.Analysis {
	sentiment, score := classifyGain(summary.TotalGainPercent)

	overview := s.marketOverview(summary, sentiment)
	sectors := s.sectorItems(summary)
	vulns := s.vulnerabilities(summary)
	recs := s.recommendations(summary, sentiment)

	return &models.Analysis{
		Sentiment:       sentiment,
		SentimentScore:  score,
		MarketOverview:  overview,
		Vulnerabilities: vulns,
		Recommendations: recs,
		SectorAnalysis:  sectors,
		FullAnalysis:    renderMockReport(summary, news, overview, sentiment, sectors, vulns, recs),
		GeneratedAt:     s.now(),
	}
}

func (s *Service) marketOverview(summary *models.PortfolioSummary, sentiment models.Sentiment) string {
	base := fmt.Sprintf("ポートフォリオ全体の評価損益は%sです。", common.FormatSignedPct(summary.TotalGainPercent))
	switch sentiment {
	case models.SentimentBullish:
		return base + "全体として上昇基調にあり、市場センチメントは強気です。利益確定の水準を意識しつつ保有継続が妥当と考えられます。"
	case models.SentimentBearish:
		return base + "下落基調が続いており、市場センチメントは弱気です。損失拡大を避けるためリスク管理の強化が必要です。"
	default:
		return base + "大きなトレンドは見られず、市場センチメントは中立です。次の材料が出るまでは現状維持が妥当です。"
	}
}

func (s *Service) sectorItems(summary *models.PortfolioSummary) []models.SectorAnalysisItem {
	items := make([]models.SectorAnalysisItem, 0, len(summary.SectorBreakdown))
	for _, sec := range summary.SectorBreakdown {
		items = append(items, models.SectorAnalysisItem{
			Sector:            sec.Sector,
			Outlook:           sectorOutlooks[s.rng.Intn(len(sectorOutlooks))],
			Commentary:        sectorCommentaries[s.rng.Intn(len(sectorCommentaries))],
			Weight:            sec.Percentage,
			RecommendedWeight: clamp(sec.Percentage+float64(s.rng.Intn(11)-5), 0, 100),
		})
	}
	return items
}

func (s *Service) vulnerabilities(summary *models.PortfolioSummary) []models.Vulnerability {
	var vulns []models.Vulnerability

	if len(summary.SectorBreakdown) > 0 && summary.SectorBreakdown[0].Percentage > 40 {
		top := summary.SectorBreakdown[0]
		var affected []string
		for _, h := range summary.Holdings {
			if h.Asset.Sector == top.Sector {
				affected = append(affected, h.Asset.Ticker)
			}
		}
		vulns = append(vulns, models.Vulnerability{
			Severity:       "high",
			Title:          "セクター集中リスク",
			Description:    fmt.Sprintf("%sセクターがポートフォリオの%sを占めており、セクター固有の下落に対して脆弱です。", top.Sector, common.FormatPct(top.Percentage)),
			AffectedAssets: affected,
		})
	}

	if summary.WorstPerformer != nil && summary.WorstPerformer.GainPercent < -10 {
		vulns = append(vulns, models.Vulnerability{
			Severity:       "medium",
			Title:          "含み損銘柄",
			Description:    fmt.Sprintf("%sが%sの含み損となっており、損切りラインの設定を検討すべきです。", summary.WorstPerformer.Asset.Name, common.FormatSignedPct(summary.WorstPerformer.GainPercent)),
			AffectedAssets: []string{summary.WorstPerformer.Asset.Ticker},
		})
	}

	vulns = append(vulns, models.Vulnerability{
		Severity:    "low",
		Title:       "為替変動リスク",
		Description: "外貨建て資産は円換算評価額が為替レートの変動に影響されます。",
	})

	return vulns
}

func (s *Service) recommendations(summary *models.PortfolioSummary, sentiment models.Sentiment) []models.Recommendation {
	var recs []models.Recommendation

	if summary.TopPerformer != nil && summary.TopPerformer.GainPercent > 20 {
		recs = append(recs, models.Recommendation{
			Action:      "sell",
			Priority:    "medium",
			Title:       fmt.Sprintf("%sの部分利益確定", summary.TopPerformer.Asset.Name),
			Description: "含み益の一部を確定してポジションを軽くします。",
			Reasoning:   fmt.Sprintf("%sの含み益が出ているため、一部を利益確定してリスクを軽減できます。", common.FormatSignedPct(summary.TopPerformer.GainPercent)),
		})
	}

	if sentiment == models.SentimentBearish {
		recs = append(recs, models.Recommendation{
			Action:      "watch",
			Priority:    "high",
			Title:       "ディフェンシブ銘柄への分散",
			Description: "安定セクターの比率を高めます。",
			Reasoning:   "下落局面では生活必需品や公益などの安定セクターの比率を高めることで変動を抑えられます。",
		})
	} else {
		recs = append(recs, models.Recommendation{
			Action:      "hold",
			Priority:    "low",
			Title:       "定期的なリバランス",
			Description: "四半期ごとに構成比を見直します。",
			Reasoning:   "構成比の偏りを四半期ごとに見直すことで、意図しないリスク集中を防げます。",
		})
	}

	return recs
}

func renderMockReport(summary *models.PortfolioSummary, news []models.NewsItem, overview string, sentiment models.Sentiment, sectors []models.SectorAnalysisItem, vulns []models.Vulnerability, recs []models.Recommendation) string {
	var b strings.Builder

	b.WriteString("# ポートフォリオ分析レポート\n\n")
	b.WriteString("## 市場概況\n\n")
	b.WriteString(overview)
	fmt.Fprintf(&b, "\n\nセンチメント: %s\n", sentimentLabel(sentiment))

	fmt.Fprintf(&b, "\n## ポートフォリオサマリー\n\n")
	fmt.Fprintf(&b, "- 評価額合計: %s\n", common.FormatJPY(summary.TotalValue))
	fmt.Fprintf(&b, "- 取得額合計: %s\n", common.FormatJPY(summary.TotalCost))
	fmt.Fprintf(&b, "- 評価損益: %s (%s)\n", common.FormatSignedJPY(summary.TotalGain), common.FormatSignedPct(summary.TotalGainPercent))

	b.WriteString("\n## セクター別見通し\n\n")
	b.WriteString("| セクター | 見通し | 現在比率 | 推奨比率 |\n|---|---|---|---|\n")
	for _, item := range sectors {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", item.Sector, item.Outlook, common.FormatPct(item.Weight), common.FormatPct(item.RecommendedWeight))
	}

	b.WriteString("\n## リスク要因\n\n")
	for _, v := range vulns {
		fmt.Fprintf(&b, "- **%s**: %s\n", v.Title, v.Description)
	}

	b.WriteString("\n## 推奨アクション\n\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "- **%s**: %s\n", r.Title, r.Reasoning)
	}

	if len(news) > 0 {
		b.WriteString("\n## 参考ニュース\n\n")
		for _, item := range news {
			fmt.Fprintf(&b, "- %s (%s)\n", item.Title, item.Source.Name)
		}
	}

	b.WriteString("\n---\n*このレポートはローカルテンプレートから生成されたものであり、投資助言ではありません。*\n")

	return b.String()
}

func sentimentLabel(s models.Sentiment) string {
	switch s {
	case models.SentimentBullish:
		return "強気"
	case models.SentimentBearish:
		return "弱気"
	default:
		return "中立"
	}
}
