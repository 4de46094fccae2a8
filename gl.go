package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/op/go-logging"

	"github.com/ironsweet/golucene/core/codec"
	"github.com/ironsweet/golucene/core/codec/ramonly"
	"github.com/ironsweet/golucene/core/codec/spi"
	. "github.com/ironsweet/golucene/core/index/model"
	. "github.com/ironsweet/golucene/core/search/model"
	"github.com/ironsweet/golucene/core/store"
	"github.com/ironsweet/golucene/core/util"
)

var log = logging.MustGetLogger("gl")

var docs = []string{
	"the quick brown fox jumps over the lazy dog",
	"the bat flew over the belfry",
	"a quick bat and a lazy fox",
}

type posting struct {
	doc       int
	positions []int
}

func main() {
	configPath := flag.String("config", "", "YAML config of the ramonly codec")
	path := flag.String("dir", "", "directory for segment blobs (in memory when empty)")
	query := flag.String("term", "bat", "term to look up")
	deleted := flag.Int("delete", -1, "doc to mark deleted while reading")
	flag.Parse()

	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`))
	logging.SetBackend(backend)

	cfg, err := ramonly.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err = cfg.ApplyLogLevel(); err != nil {
		log.Fatal(err)
	}

	var dir store.Directory = store.NewRAMDirectory()
	if *path != "" {
		if dir, err = store.NewSimpleFSDirectory(*path); err != nil {
			log.Fatal(err)
		}
	}
	defer dir.Close()

	format := ramonly.NewPostingsFormat(cfg, nil, ramonly.DefaultMetrics())
	spi.RegisterPostingsFormat(format)

	info := NewFieldInfo("content", true, 0, false, INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS, nil)
	si := NewSegmentInfo(dir, "_0", len(docs), nil)
	log.Infof("Writing %v docs with %v", len(docs), format)
	if err = writeSegment(format, NewSegmentWriteState(dir, si, NewFieldInfos(info), store.IO_CONTEXT_DEFAULT), info); err != nil {
		log.Fatal(err)
	}

	log.Info("Opening segment...")
	fp, err := format.FieldsProducer(NewSegmentReadState(dir, si, NewFieldInfos(info), store.IO_CONTEXT_READ))
	if err != nil {
		log.Fatal(err)
	}
	defer fp.Close()

	var liveDocs util.Bits
	if *deleted >= 0 {
		liveDocs = util.NewLiveDocsWithout(len(docs), *deleted)
	}
	if err = lookup(fp.Terms("content"), *query, liveDocs); err != nil {
		log.Fatal(err)
	}
}

func writeSegment(format spi.PostingsFormat, state *SegmentWriteState, info *FieldInfo) error {
	inverted := make(map[string][]*posting)
	for doc, text := range docs {
		for pos, token := range strings.Fields(strings.ToLower(text)) {
			list := inverted[token]
			if len(list) == 0 || list[len(list)-1].doc != doc {
				list = append(list, &posting{doc: doc})
				inverted[token] = list
			}
			p := list[len(list)-1]
			p.positions = append(p.positions, pos)
		}
	}
	terms := make([][]byte, 0, len(inverted))
	for term := range inverted {
		terms = append(terms, []byte(term))
	}
	sort.Sort(util.BytesRefs(terms))

	fc, err := format.FieldsConsumer(state)
	if err != nil {
		return err
	}
	tc, err := fc.AddField(info)
	if err != nil {
		return err
	}
	var sumTotalTermFreq, sumDocFreq int64
	seen := make(map[int]bool)
	for _, term := range terms {
		pc, err := tc.StartTerm(term)
		if err != nil {
			return err
		}
		var totalTermFreq int64
		for _, p := range inverted[string(term)] {
			if err = pc.StartDoc(p.doc, len(p.positions)); err != nil {
				return err
			}
			for _, pos := range p.positions {
				if err = pc.AddPosition(pos, nil, -1, -1); err != nil {
					return err
				}
			}
			if err = pc.FinishDoc(); err != nil {
				return err
			}
			totalTermFreq += int64(len(p.positions))
			seen[p.doc] = true
		}
		docFreq := len(inverted[string(term)])
		if err = tc.FinishTerm(term, codec.NewTermStats(docFreq, totalTermFreq)); err != nil {
			return err
		}
		sumTotalTermFreq += totalTermFreq
		sumDocFreq += int64(docFreq)
	}
	if err = tc.Finish(sumTotalTermFreq, sumDocFreq, len(seen)); err != nil {
		return err
	}
	return fc.Close()
}

func lookup(terms Terms, text string, liveDocs util.Bits) error {
	fmt.Printf("field has %v terms in %v docs\n", terms.Size(), terms.DocCount())
	te := terms.Iterator(nil)
	status, err := te.SeekCeil([]byte(text))
	if err != nil {
		return err
	}
	switch status {
	case SEEK_STATUS_END:
		fmt.Printf("no term at or after %q\n", text)
		return nil
	case SEEK_STATUS_NOT_FOUND:
		fmt.Printf("%q not found, showing %q\n", text, te.Term())
	}
	dpe, err := te.DocsAndPositions(liveDocs, nil)
	if err != nil {
		return err
	}
	for {
		doc, err := dpe.NextDoc()
		if err != nil {
			return err
		}
		if doc == NO_MORE_DOCS {
			return nil
		}
		freq, err := dpe.Freq()
		if err != nil {
			return err
		}
		positions := make([]int, freq)
		for i := range positions {
			if positions[i], err = dpe.NextPosition(); err != nil {
				return err
			}
		}
		fmt.Printf("doc %v: %q at %v\n", doc, docs[doc], positions)
	}
}
