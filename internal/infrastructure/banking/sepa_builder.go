package banking

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain/entity"
)

// Namespace SEPA pain.001.001.03 (ISO 20022, CustomerCreditTransferInitiation).
const (
	nsPain001 = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"
	nsXsi     = "http://www.w3.org/2001/XMLSchema-instance"
)

var _ ports.SEPABuilder = (*SEPABuilder)(nil)

// SEPABuilder genera il documento pain.001.001.03 per un lotto di bonifici
// addebitati su un unico conto aziendale.
type SEPABuilder struct{}

// NewSEPABuilder costruisce il builder.
func NewSEPABuilder() *SEPABuilder {
	return &SEPABuilder{}
}

// Build genera il []byte del documento. msgID identifica il lotto,
// execution è la data di esecuzione richiesta.
func (b *SEPABuilder) Build(
	msgID string,
	company *entity.Company,
	debtorIBAN *entity.IBAN,
	payments []ports.SEPAPayment,
	execution time.Time,
) ([]byte, error) {
	if company == nil || debtorIBAN == nil {
		return nil, fmt.Errorf("sepa: company e iban di addebito obbligatori")
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("sepa: nessun pagamento da esportare")
	}

	total := decimal.Zero
	for _, p := range payments {
		if p.Movement == nil {
			return nil, fmt.Errorf("sepa: pagamento senza movimento")
		}
		if p.Movement.Type != entity.MovementTypeExpense {
			return nil, fmt.Errorf("sepa: il movimento %s non è una spesa", p.Movement.ID)
		}
		if p.CreditorIBAN == "" {
			return nil, fmt.Errorf("sepa: beneficiario senza IBAN per il movimento %s", p.Movement.ID)
		}
		total = total.Add(p.Movement.Amount)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Document")
	root.CreateAttr("xmlns", nsPain001)
	root.CreateAttr("xmlns:xsi", nsXsi)

	cstmr := root.CreateElement("CstmrCdtTrfInitn")

	// ── GrpHdr: testata del lotto ─────────────────────────────────────────
	grpHdr := cstmr.CreateElement("GrpHdr")
	grpHdr.CreateElement("MsgId").SetText(msgID)
	grpHdr.CreateElement("CreDtTm").SetText(time.Now().UTC().Format("2006-01-02T15:04:05"))
	grpHdr.CreateElement("NbOfTxs").SetText(fmt.Sprintf("%d", len(payments)))
	grpHdr.CreateElement("CtrlSum").SetText(total.StringFixed(2))
	grpHdr.CreateElement("InitgPty").CreateElement("Nm").SetText(company.Name)

	// ── PmtInf: informazioni di pagamento (un blocco, un conto di addebito) ──
	pmtInf := cstmr.CreateElement("PmtInf")
	pmtInf.CreateElement("PmtInfId").SetText(msgID + "-01")
	pmtInf.CreateElement("PmtMtd").SetText("TRF")
	pmtInf.CreateElement("NbOfTxs").SetText(fmt.Sprintf("%d", len(payments)))
	pmtInf.CreateElement("CtrlSum").SetText(total.StringFixed(2))

	pmtTpInf := pmtInf.CreateElement("PmtTpInf")
	pmtTpInf.CreateElement("SvcLvl").CreateElement("Cd").SetText("SEPA")

	pmtInf.CreateElement("ReqdExctnDt").SetText(execution.Format("2006-01-02"))

	dbtr := pmtInf.CreateElement("Dbtr")
	dbtr.CreateElement("Nm").SetText(company.Name)

	dbtrAcct := pmtInf.CreateElement("DbtrAcct")
	dbtrAcct.CreateElement("Id").CreateElement("IBAN").SetText(debtorIBAN.Value)

	dbtrAgt := pmtInf.CreateElement("DbtrAgt")
	dbtrAgt.CreateElement("FinInstnId")

	pmtInf.CreateElement("ChrgBr").SetText("SLEV")

	// ── CdtTrfTxInf: un blocco per bonifico ───────────────────────────────
	for _, p := range payments {
		tx := pmtInf.CreateElement("CdtTrfTxInf")

		pmtID := tx.CreateElement("PmtId")
		endToEnd := p.Movement.DocumentNumber
		if endToEnd == "" {
			endToEnd = p.Movement.ID
		}
		pmtID.CreateElement("EndToEndId").SetText(endToEnd)

		amt := tx.CreateElement("Amt").CreateElement("InstdAmt")
		amt.CreateAttr("Ccy", "EUR")
		amt.SetText(p.Movement.Amount.StringFixed(2))

		tx.CreateElement("Cdtr").CreateElement("Nm").SetText(p.CreditorName)
		tx.CreateElement("CdtrAcct").CreateElement("Id").CreateElement("IBAN").SetText(p.CreditorIBAN)

		if p.Movement.Description != "" {
			tx.CreateElement("RmtInf").CreateElement("Ustrd").SetText(p.Movement.Description)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sepa: serializzare il documento: %w", err)
	}
	return out, nil
}
