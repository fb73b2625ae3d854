package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/kripto-transakcije/explorer/pkg/catalog"
	"github.com/kripto-transakcije/explorer/pkg/chaindata"
	"github.com/kripto-transakcije/explorer/pkg/format"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/search"
	"github.com/olekukonko/tablewriter"
)

type printer struct {
	out     io.Writer
	reader  *chaindata.Reader
	catalog *catalog.Catalog
	limit   int
}

// statsWindow matches the address page default.
const statsWindow = 100

var heading = color.New(color.FgCyan, color.Bold)

func (p *printer) title(layout string, args ...interface{}) {
	heading.Fprintf(p.out, "\n"+layout+"\n", args...)
}

func (p *printer) details(rows [][]string) {
	table := tablewriter.NewWriter(p.out)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(rows)
	table.Render()
}

func (p *printer) txTable(txs []models.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(p.out, "Nema dostupnih transakcija")
		return
	}
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Hash", "Blok", "Vrijeme", "Od", "Za", "Vrijednost (ETH)"})
	now := time.Now()
	for _, tx := range txs {
		to := format.ShortHash(tx.To)
		if tx.IsContractCreation() {
			to = "Kreiranje ugovora"
		}
		table.Append([]string{
			format.ShortHash(tx.Hash),
			strconv.FormatUint(tx.BlockNumber, 10),
			format.RelativeTime(tx.Timestamp, now),
			format.ShortHash(tx.From),
			to,
			format.Ether(tx.Value),
		})
	}
	table.Render()
}

func (p *printer) tokenTable(tokens []models.Token) {
	if len(tokens) == 0 {
		fmt.Fprintln(p.out, "Nema dostupnih tokena")
		return
	}
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Token", "Simbol", "Ugovor", "Stanje"})
	for _, tok := range tokens {
		balance := format.NotAvailable
		if tok.Balance != "" {
			balance = format.TokenAmount(tok.Balance, tok.Decimals)
		}
		table.Append([]string{tok.Name, tok.Symbol, tok.ContractAddress, balance})
	}
	table.Render()
}

func (p *printer) status(ctx context.Context) {
	s := p.reader.NetworkStatus(ctx)
	p.title("Ethereum mreža")
	p.details([][]string{
		{"Zadnji blok", orNA(s.LatestBlock > 0, format.Thousands(s.LatestBlock))},
		{"Cijena ETH", orNA(s.EthPrice > 0, format.USD(s.EthPrice))},
		{"Gas cijena", orNA(s.GasPrice > 0, format.Decimal(s.GasPrice, 0)+" Gwei")},
		{"Ukupno transakcija", orNA(s.TxCount > 0, format.Thousands(s.TxCount))},
		{"Ažurirano", format.DateTime(s.UpdatedAt)},
	})
}

func (p *printer) block(ctx context.Context, query string) error {
	number, err := strconv.ParseUint(query, 10, 64)
	if err != nil || !search.IsBlockNumber(query) {
		return fmt.Errorf("Blok nije pronađen: %s", query)
	}
	b := p.reader.Block(ctx, number)
	if b == nil {
		return fmt.Errorf("Blok nije pronađen: %s", query)
	}
	p.title("Blok #%s", format.Thousands(b.Number))
	p.details([][]string{
		{"Hash", b.Hash},
		{"Roditeljski hash", b.ParentHash},
		{"Vrijeme", format.DateTime(b.Timestamp)},
		{"Rudar", format.Checksum(b.Miner)},
		{"Transakcije", strconv.Itoa(b.TransactionCount)},
		{"Iskorišteni gas", format.Thousands(format.ParseUint(b.GasUsed))},
		{"Gas limit", format.Thousands(format.ParseUint(b.GasLimit))},
		{"Veličina", format.Size(b.Size)},
	})
	txs := b.Transactions
	if len(txs) > p.limit {
		txs = txs[:p.limit]
	}
	p.title("Transakcije u bloku")
	p.txTable(txs)
	return nil
}

func (p *printer) transaction(ctx context.Context, hash string) error {
	if !search.IsTxHash(hash) {
		return fmt.Errorf("Transakcija nije pronađena: %s", hash)
	}
	tx := p.reader.Transaction(ctx, hash)
	if tx == nil {
		return fmt.Errorf("Transakcija nije pronađena: %s", hash)
	}
	to := format.Checksum(tx.To)
	if tx.IsContractCreation() {
		to = "Kreiranje ugovora"
	}
	gas := tx.GasUsed
	if gas == "" {
		gas = tx.Gas
	}
	p.title("Transakcija")
	p.details([][]string{
		{"Hash", tx.Hash},
		{"Status", statusLabel(tx.Status)},
		{"Blok", strconv.FormatUint(tx.BlockNumber, 10)},
		{"Vrijeme", format.DateTime(tx.Timestamp)},
		{"Od", format.Checksum(tx.From)},
		{"Za", to},
		{"Vrijednost", format.Ether(tx.Value) + " ETH"},
		{"Naknada", format.Fee(gas, tx.GasPrice) + " ETH"},
		{"Cijena gasa", format.Gwei(tx.GasPrice) + " Gwei"},
	})
	return nil
}

func (p *printer) address(ctx context.Context, address string) error {
	if !search.IsAddress(address) {
		return fmt.Errorf("Adresa nije pronađena: %s", address)
	}
	o := p.reader.AddressOverview(ctx, address, p.limit, statsWindow)
	if !o.Found() {
		return fmt.Errorf("Adresa nije pronađena: %s", address)
	}

	p.title("Adresa %s", format.Checksum(address))
	p.details([][]string{
		{"Stanje", format.Ether(o.Status.Balance) + " ETH"},
		{"Vrijednost", orNA(o.EthPrice > 0, format.USD(o.BalanceUSD()))},
		{"Broj transakcija", format.Thousands(o.Status.TxCount)},
		{"Poslano", fmt.Sprintf("%d (%s ETH)", o.Stats.Sent, format.Decimal(o.Stats.SentValue, 6))},
		{"Primljeno", fmt.Sprintf("%d (%s ETH)", o.Stats.Received, format.Decimal(o.Stats.ReceivedValue, 6))},
		{"Ukupne naknade", format.Decimal(o.Stats.TotalFees, 8) + " ETH"},
	})
	p.title("Transakcije")
	p.txTable(o.Transactions)
	p.title("Tokeni")
	p.tokenTable(o.Tokens)
	return nil
}

func (p *printer) tokens(ctx context.Context, query string) {
	tokens := p.catalog.SearchTokens(query)
	if len(tokens) == 0 && search.IsAddress(query) {
		if tok := p.reader.TokenMetadata(ctx, query); tok != nil {
			tokens = append(tokens, *tok)
		}
	}
	p.title("Tokeni: %s", query)
	p.tokenTable(tokens)
}

func statusLabel(s string) string {
	switch s {
	case models.TxStatusSuccess:
		return color.GreenString("Uspješno")
	case models.TxStatusFailed:
		return color.RedString("Neuspješno")
	}
	return color.YellowString("Na čekanju")
}

func orNA(ok bool, v string) string {
	if !ok {
		return format.NotAvailable
	}
	return v
}
