package ai

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AdminContext is the fixed business-assistant preamble for the admin
// analytics path.
const AdminContext = `
Você é um assistente de negócios especializado em e-commerce, focado em análise de dados e insights estratégicos.

SEU PAPEL:
- Analisar métricas de vendas, estoque e clientes
- Identificar tendências e padrões
- Fornecer recomendações estratégicas
- Alertar sobre problemas (estoque baixo, produtos parados)
- Sugerir oportunidades de crescimento

ÁREAS DE EXPERTISE:
1. GESTÃO DE ESTOQUE
   - Identificar produtos com estoque baixo
   - Sugerir reposições baseadas em demanda
   - Detectar produtos parados (sem vendas)
   - Otimizar níveis de estoque

2. ANÁLISE DE VENDAS
   - Identificar produtos mais lucrativos
   - Analisar tendências de vendas
   - Calcular métricas (ticket médio, conversão)
   - Comparar períodos

3. INSIGHTS DE CLIENTES
   - Segmentação de clientes
   - Padrões de comportamento
   - Taxa de recompra
   - Produtos favoritos por segmento

4. ESTRATÉGIAS DE CRESCIMENTO
   - Sugestões de novos produtos
   - Otimização de preços
   - Melhores horários para promoções
   - Categorias promissoras

5. TENDÊNCIAS DE MERCADO
   - Produtos em alta
   - Sazonalidade
   - Comportamento do consumidor
   - Oportunidades emergentes

TOM DE VOZ:
- Profissional e direto
- Baseado em dados
- Proativo com sugestões
- Use números e métricas
- Formate respostas com bullet points

FORMATO DE RESPOSTA:
1. Resumo executivo (1-2 linhas)
2. Análise detalhada com dados
3. Insights principais (3-5 pontos)
4. Recomendações acionáveis
5. Próximos passos sugeridos

QUANDO ANALISAR DADOS:
- Sempre cite números específicos
- Compare com períodos anteriores quando possível
- Identifique tendências (crescimento/queda)
- Destaque outliers (muito bom ou muito ruim)
- Seja específico nas recomendações
`

// AnalyticsData is the structured dashboard snapshot an admin can
// attach to a question. Field names follow the dashboard payload.
type AnalyticsData struct {
	TotalRevenue     float64           `json:"totalRevenue"`
	TotalOrders      int               `json:"totalOrders"`
	TotalProducts    int               `json:"totalProducts"`
	TotalCustomers   int               `json:"totalCustomers"`
	SalesByMonth     []MonthlySales    `json:"salesByMonth,omitempty"`
	TopProducts      []TopProduct      `json:"topProducts,omitempty"`
	LowStock         []StockAlert      `json:"lowStock,omitempty"`
	StagnantProducts []StagnantProduct `json:"stagnantProducts,omitempty"`
}

type MonthlySales struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type TopProduct struct {
	Name    string  `json:"name"`
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}

type StockAlert struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type StagnantProduct struct {
	Name     string `json:"name"`
	LastSale string `json:"lastSale"`
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatBRL renders a monetary value the Brazilian way: thousands
// separated by dots, two decimals after a comma.
func formatBRL(v float64) string {
	return ptBR.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatAnalytics serializes the snapshot into the deterministic
// human-readable block appended to the admin prompt. Field order is
// fixed; optional sections appear only when data is present.
func FormatAnalytics(data AnalyticsData) string {
	var b strings.Builder

	avgTicket := 0.0
	if data.TotalOrders > 0 {
		avgTicket = data.TotalRevenue / float64(data.TotalOrders)
	}

	b.WriteString("MÉTRICAS ATUAIS:\n")
	fmt.Fprintf(&b, "- Receita Total: R$ %s\n", formatBRL(data.TotalRevenue))
	fmt.Fprintf(&b, "- Total de Pedidos: %d\n", data.TotalOrders)
	fmt.Fprintf(&b, "- Produtos Ativos: %d\n", data.TotalProducts)
	fmt.Fprintf(&b, "- Total de Clientes: %d\n", data.TotalCustomers)
	fmt.Fprintf(&b, "- Ticket Médio: R$ %s\n", formatBRL(avgTicket))

	if len(data.TopProducts) > 0 {
		b.WriteString("\nTOP PRODUTOS:\n")
		for i, p := range data.TopProducts {
			fmt.Fprintf(&b, "%d. %s - %d vendas - R$ %s\n", i+1, p.Name, p.Sold, formatBRL(p.Revenue))
		}
	}

	if len(data.SalesByMonth) > 0 {
		months := data.SalesByMonth
		if len(months) > 3 {
			months = months[len(months)-3:]
		}
		b.WriteString("\nVENDAS POR MÊS (últimos 3 meses):\n")
		for _, m := range months {
			fmt.Fprintf(&b, "%s: R$ %s (%d pedidos)\n", m.Month, formatBRL(m.Revenue), m.Orders)
		}
	}

	if len(data.LowStock) > 0 {
		b.WriteString("\nALERTA - ESTOQUE BAIXO:\n")
		for _, p := range data.LowStock {
			fmt.Fprintf(&b, "- %s: %d unidades\n", p.Name, p.Stock)
		}
	}

	if len(data.StagnantProducts) > 0 {
		b.WriteString("\nPRODUTOS SEM VENDAS RECENTES:\n")
		for _, p := range data.StagnantProducts {
			fmt.Fprintf(&b, "- %s (última venda: %s)\n", p.Name, p.LastSale)
		}
	}

	return strings.TrimSpace(b.String())
}
