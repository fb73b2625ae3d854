package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/search"
)

type blocksData struct {
	Blocks []models.Block
}

func (c *Controller) HandleBlocks(w http.ResponseWriter, r *http.Request) {
	blocks := c.App.Reader.LatestBlocks(r.Context(), c.App.Config.BlocksPageSize)
	c.render(w, http.StatusOK, "blocks", page{
		Title: "Blokovi",
		Nav:   "blokovi",
		Data:  blocksData{Blocks: blocks},
	})
}

type blockData struct {
	Block *models.Block
	Next  uint64
}

func (c *Controller) HandleBlock(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["broj"]
	if !search.IsBlockNumber(raw) {
		c.notFound(w, "Blok nije pronađen", raw)
		return
	}
	number, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.notFound(w, "Blok nije pronađen", raw)
		return
	}

	block := c.App.Reader.Block(r.Context(), number)
	if block == nil {
		c.notFound(w, "Blok nije pronađen", raw)
		return
	}

	c.render(w, http.StatusOK, "block", page{
		Title: "Blok #" + raw,
		Nav:   "blokovi",
		Data:  blockData{Block: block, Next: number + 1},
	})
}
