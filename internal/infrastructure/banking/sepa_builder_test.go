package banking

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain/entity"
)

func testCompany() *entity.Company {
	return &entity.Company{
		ID:   "c-1",
		Name: "Rossi Impianti SRL",
	}
}

func testDebtorIBAN() *entity.IBAN {
	return &entity.IBAN{
		ID:    "i-1",
		Value: "IT60X0542811101000000123456",
	}
}

func expensePayment(id, doc, desc string, amount string, creditorIBAN string) ports.SEPAPayment {
	return ports.SEPAPayment{
		Movement: &entity.Movement{
			ID:             id,
			Type:           entity.MovementTypeExpense,
			Amount:         decimal.RequireFromString(amount),
			DocumentNumber: doc,
			Description:    desc,
		},
		CreditorName: "Fornitore SpA",
		CreditorIBAN: creditorIBAN,
	}
}

func TestSEPABuilder_Build(t *testing.T) {
	b := NewSEPABuilder()
	execution := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	payments := []ports.SEPAPayment{
		expensePayment("m-1", "FT-2026-101", "Fattura 101", "1250.50", "DE89370400440532013000"),
		expensePayment("m-2", "", "Fattura 102", "99.50", "FR1420041010050500013M02606"),
	}

	out, err := b.Build("ECF-20260901", testCompany(), testDebtorIBAN(), payments, execution)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03")
	assert.Contains(t, xml, "<MsgId>ECF-20260901</MsgId>")
	assert.Contains(t, xml, "<NbOfTxs>2</NbOfTxs>")
	// CtrlSum: somma dei due importi
	assert.Contains(t, xml, "<CtrlSum>1350.00</CtrlSum>")
	assert.Contains(t, xml, "<ReqdExctnDt>2026-09-01</ReqdExctnDt>")
	assert.Contains(t, xml, "<IBAN>IT60X0542811101000000123456</IBAN>")
	assert.Contains(t, xml, "<IBAN>DE89370400440532013000</IBAN>")
	// EndToEndId: numero documento se presente, altrimenti l'ID del movimento
	assert.Contains(t, xml, "<EndToEndId>FT-2026-101</EndToEndId>")
	assert.Contains(t, xml, "<EndToEndId>m-2</EndToEndId>")
	assert.Contains(t, xml, `Ccy="EUR"`)
	assert.Contains(t, xml, "<Ustrd>Fattura 101</Ustrd>")
	// Due blocchi di bonifico
	assert.Equal(t, 2, strings.Count(xml, "<CdtTrfTxInf>"))
}

func TestSEPABuilder_RifiutaMovimentoDiEntrata(t *testing.T) {
	b := NewSEPABuilder()

	p := expensePayment("m-1", "", "", "10.00", "DE89370400440532013000")
	p.Movement.Type = entity.MovementTypeIncome

	_, err := b.Build("ECF-1", testCompany(), testDebtorIBAN(), []ports.SEPAPayment{p}, time.Now())
	assert.Error(t, err)
}

func TestSEPABuilder_RifiutaBeneficiarioSenzaIBAN(t *testing.T) {
	b := NewSEPABuilder()

	p := expensePayment("m-1", "", "", "10.00", "")

	_, err := b.Build("ECF-1", testCompany(), testDebtorIBAN(), []ports.SEPAPayment{p}, time.Now())
	assert.Error(t, err)
}

func TestSEPABuilder_RifiutaLottoVuoto(t *testing.T) {
	b := NewSEPABuilder()
	_, err := b.Build("ECF-1", testCompany(), testDebtorIBAN(), nil, time.Now())
	assert.Error(t, err)
}
