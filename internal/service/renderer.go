package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const disclosureTemplate = "Valor recebido em moeda estrangeira (%s), convertido conforme PTAX de venda de %s (%s), " +
	"conforme IN RFB nº 1.312/2012. Valor total em reais: %s."

const sourceLinePrefix = "Fonte dos dados: "

// Render builds the disclosure sentence for usdAmount converted at q. It is a
// pure function of its inputs.
func Render(usdAmount decimal.Decimal, q *Quotation, showSource bool) (string, error) {
	if err := ValidateAmount(usdAmount); err != nil {
		return "", err
	}
	if q == nil {
		return "", fmt.Errorf("%w: no quotation to render", ErrRateUnavailable)
	}

	brlAmount := usdAmount.Mul(q.Rate)

	text := fmt.Sprintf(disclosureTemplate,
		FormatCurrency(usdAmount, SymbolUSD),
		q.DateString(),
		formatRate(q.Rate),
		FormatCurrency(brlAmount, SymbolBRL),
	)

	if showSource {
		text += "\n" + sourceLinePrefix + q.SourceURL
	}
	return text, nil
}
