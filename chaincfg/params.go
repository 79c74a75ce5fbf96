// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg holds the per-network constant table consensus code is
// parameterized by (spec component C4): genesis block data, subsidy and
// retarget constants, activation heights, AuxPoW settings, deployment
// records and checkpoints. It follows the teacher's chaincfg.Params
// record-of-constants shape, generalized from a single-algorithm chain to
// this module's five-algorithm, merge-mined one, and narrowed to the
// fields the consensus core actually consumes — address/HD-key encoding
// and BIP9 state-machine plumbing are external collaborators' concerns
// (spec.md §1) and are not carried here.
package chaincfg

import (
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/badcoin-net/badcoind/chainalgo"
)

// Checkpoint identifies a known good point in the block chain, consumed by
// an external collaborator as an acceptance-layer gate (spec.md §6). The
// core exposes them by value and leaves validation-stage enforcement to the
// caller; CheckBlock and GetTotalBlocksEstimate are offered as the same
// read-only predicate the original implementation's checkpoints module
// applies, not wired into any acceptance path here.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// Deployment is a BIP9-style deployment record: the bit, start time, and
// timeout the core consumes read-only to resolve whether a rule is active,
// without itself running any tally state machine (spec.md §3, §9 — "the
// core only consumes activation heights or flags").
type Deployment struct {
	BitNumber uint8
	StartTime uint64
	Timeout   uint64
}

// RetargetFamily names which historical retarget engine a network uses,
// per spec.md §9's "strategy selected by (network, height)" redesign note.
// It is carried on Params as a tag only; see Params.RetargetFamily.
type RetargetFamily int

const (
	// RetargetWindowV1V2 is the V1/V2/longblocks window-average family
	// (§4.6), the live family for the supported network.
	RetargetWindowV1V2 RetargetFamily = iota
	// RetargetKGW is the Kimoto Gravity Well family, documented for
	// completeness per spec.md §4.6; no network in Params selects it.
	RetargetKGW
	// RetargetDGW3 is the DarkGravityWave family, documented for
	// completeness per spec.md §4.6; no network in Params selects it.
	RetargetDGW3
	// RetargetNone disables retargeting entirely (regtest).
	RetargetNone
)

// AlgoWorkFactor is the fixed per-algorithm work multiplier used by the
// BlockAlgoWorkWeightStart-gated work formula (spec.md §4.7).
var AlgoWorkFactor = [chainalgo.NumAlgos]int64{
	chainalgo.SHA256D:   1,
	chainalgo.SCRYPT:    4096,
	chainalgo.GROESTL:   512,
	chainalgo.SKEIN:     24,
	chainalgo.FifthSlot: 1024, // QUBIT factor; also used pre-Yescrypt-activation
}

// Params is the immutable per-network constant table. One value exists per
// network id; see MainNetParams, TestNetParams, RegressionNetParams.
type Params struct {
	Name        string
	Net         wire.BitcoinNet
	DefaultPort string

	// Genesis.
	GenesisBlock *wire.MsgBlock
	GenesisHash  chainhash.Hash

	// PowLimit is the network-wide easiest-difficulty ceiling, as both a
	// 256-bit integer and its compact encoding.
	PowLimit     *big.Int
	PowLimitBits uint32

	// PoWNoRetargeting, when true, always returns bits(prev) unchanged
	// (spec.md §8 testable property, scenario S3) — set on regtest.
	PoWNoRetargeting bool

	// AllowMinDifficultyBlocks enables the min-difficulty escape hatch
	// (spec.md §4.6) on networks where long inter-block gaps are
	// expected (test/regtest).
	AllowMinDifficultyBlocks bool

	// Subsidy.
	SubsidyHalvingInterval    int32
	SubsidyHalvingIntervalV2a int32
	SubsidyHalvingIntervalV2b int32
	SubsidyHalvingIntervalV2c int32
	BaseSubsidy               int64

	// NumAlgos is carried on Params (rather than hardcoded) so tests can
	// exercise non-default values; production networks always set 5.
	NumAlgos int32

	// Target spacings, per spec.md §3.
	TargetSpacingV1  int64 // 30s
	TargetSpacingV2  int64 // 60s
	TargetSpacingV3a int64 // 2min
	TargetSpacingV3b int64 // 4min
	TargetSpacingV3c int64 // 8min

	AveragingInterval int64 // N = 10

	MaxAdjustDown   int64 // percent widening permitted
	MaxAdjustUpV1   int64
	MaxAdjustUpV2   int64

	// Activation heights (spec.md §3). Monotonic; a height of 0 means
	// "active from genesis", and a height at or beyond math.MaxInt32
	// effectively means "never" for lineages that don't carry a rule.
	BlockTimeWarpPreventStart1 int32
	BlockTimeWarpPreventStart2 int32
	BlockTimeWarpPreventStart3 int32

	Phase2TimespanStart int32
	BlockDiffAdjustV2   int32

	BlockSequentialAlgoRuleStart1 int32
	BlockSequentialAlgoRuleStart2 int32
	SequentialAlgoMaxCount1       int32 // 6
	SequentialAlgoMaxCount2       int32 // 3
	SequentialAlgoMaxCount3       int32 // 6

	BlockAlgoWorkWeightStart int32

	BlockAlgoNormalisedWorkStart       int32
	BlockAlgoNormalisedWorkDecayStart1 int32
	BlockAlgoNormalisedWorkDecayStart2 int32

	GeoAvgWorkStart int32

	Fork1MinBlock int32

	StartAuxPow int32

	LongblocksStartV1a int32
	LongblocksStartV1b int32
	LongblocksStartV1c int32

	// RetargetFamily records which retarget engine the network uses for
	// heights at or above genesis. It is a descriptive tag: no function in
	// this module dispatches on it (GetNextWorkRequired consults
	// PoWNoRetargeting, and the KGW and DGW3 engines are separate functions
	// a caller invokes directly). No shipped network here is tagged KGW or
	// DGW3; see DESIGN.md for the Open Question disposition.
	RetargetFamily RetargetFamily

	// AuxPoW.
	AuxpowChainID  int32
	StrictChainID  bool

	// TimeYescryptStart is the Unix time at which the fifth rotating
	// algorithm slot switches from Qubit to Yescrypt (spec.md §6).
	TimeYescryptStart int64

	// Deployments, consumed read-only (no tally state machine here).
	Deployments map[string]Deployment

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint
}

// FifthSlotAlgoAt resolves which concrete hash function backs the rotating
// fifth slot at the given header time, per spec.md §6 ("block-time based;
// not height based").
func (p *Params) FifthSlotAlgoAt(blockTime int64) chainalgo.FifthSlotAlgo {
	if blockTime >= p.TimeYescryptStart {
		return chainalgo.Yescrypt
	}
	return chainalgo.Qubit
}

var (
	bigOne = big.NewInt(1)

	// mainPowLimit is 2^236 - 1: the historical Myriad-lineage PoW limit,
	// whose compact encoding is 0x1e0fffff.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is 2^255 - 1, the easiest possible regtest target.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// MainNetParams are the parameters for the production network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         0xee7645af,
	DefaultPort: "10888",

	GenesisBlock: &genesisBlock,
	GenesisHash:  genesisHash,

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	PoWNoRetargeting:         false,
	AllowMinDifficultyBlocks: false,

	SubsidyHalvingInterval:    967680,
	SubsidyHalvingIntervalV2a: 483840,
	SubsidyHalvingIntervalV2b: 241920,
	SubsidyHalvingIntervalV2c: 120960,
	BaseSubsidy:               1000 * 1e8,

	NumAlgos: int32(chainalgo.NumAlgos),

	TargetSpacingV1:  30,
	TargetSpacingV2:  60,
	TargetSpacingV3a: 120,
	TargetSpacingV3b: 240,
	TargetSpacingV3c: 480,

	AveragingInterval: 10,

	MaxAdjustDown: 16,
	MaxAdjustUpV1: 8,
	MaxAdjustUpV2: 16,

	BlockTimeWarpPreventStart1: 450000,
	BlockTimeWarpPreventStart2: 450003,
	BlockTimeWarpPreventStart3: 1160000,

	Phase2TimespanStart: 450000,
	BlockDiffAdjustV2:   450000,

	BlockSequentialAlgoRuleStart1: 450000,
	BlockSequentialAlgoRuleStart2: 921000,
	SequentialAlgoMaxCount1:       6,
	SequentialAlgoMaxCount2:       3,
	SequentialAlgoMaxCount3:       6,

	BlockAlgoWorkWeightStart: 450000,

	BlockAlgoNormalisedWorkStart:       740000,
	BlockAlgoNormalisedWorkDecayStart1: 745000,
	BlockAlgoNormalisedWorkDecayStart2: 751000,

	GeoAvgWorkStart: 1430000,

	Fork1MinBlock: 1430000,

	StartAuxPow: 450000,

	LongblocksStartV1a: 1600000,
	LongblocksStartV1b: 1760000,
	LongblocksStartV1c: 1920000,

	RetargetFamily: RetargetWindowV1V2,

	AuxpowChainID: 0x006a,
	StrictChainID: false,

	TimeYescryptStart: 1470009600,

	Deployments: map[string]Deployment{
		"testdummy": {BitNumber: 28, StartTime: 0, Timeout: 0},
	},

	Checkpoints: []Checkpoint{
		{Height: 0, Hash: genesisHash},
		{Height: 740001, Hash: checkpoint740001Hash},
		{Height: 1402167, Hash: checkpoint1402167Hash},
	},
}

// TestNetParams are the parameters for the public test network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         0xa455f501,
	DefaultPort: "20888",

	GenesisBlock: &testNetGenesisBlock,
	GenesisHash:  testNetGenesisHash,

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	PoWNoRetargeting:         false,
	AllowMinDifficultyBlocks: true,

	SubsidyHalvingInterval:    967680,
	SubsidyHalvingIntervalV2a: 483840,
	SubsidyHalvingIntervalV2b: 241920,
	SubsidyHalvingIntervalV2c: 120960,
	BaseSubsidy:               1000 * 1e8,

	NumAlgos: int32(chainalgo.NumAlgos),

	TargetSpacingV1:  30,
	TargetSpacingV2:  60,
	TargetSpacingV3a: 120,
	TargetSpacingV3b: 240,
	TargetSpacingV3c: 480,

	AveragingInterval: 10,

	MaxAdjustDown: 16,
	MaxAdjustUpV1: 8,
	MaxAdjustUpV2: 16,

	BlockTimeWarpPreventStart1: 0,
	BlockTimeWarpPreventStart2: 0,
	BlockTimeWarpPreventStart3: 0,

	Phase2TimespanStart: 0,
	BlockDiffAdjustV2:   0,

	BlockSequentialAlgoRuleStart1: 0,
	BlockSequentialAlgoRuleStart2: 0,
	SequentialAlgoMaxCount1:       6,
	SequentialAlgoMaxCount2:       3,
	SequentialAlgoMaxCount3:       6,

	BlockAlgoWorkWeightStart: 0,

	BlockAlgoNormalisedWorkStart:       0,
	BlockAlgoNormalisedWorkDecayStart1: 0,
	BlockAlgoNormalisedWorkDecayStart2: 0,

	GeoAvgWorkStart: 0,

	Fork1MinBlock: 0,

	StartAuxPow: 0,

	LongblocksStartV1a: 0,
	LongblocksStartV1b: 0,
	LongblocksStartV1c: 0,

	RetargetFamily: RetargetWindowV1V2,

	AuxpowChainID: 0x006a,
	StrictChainID: false,

	TimeYescryptStart: 0,

	Deployments: map[string]Deployment{
		"testdummy": {BitNumber: 28, StartTime: 0, Timeout: 0},
	},

	Checkpoints: []Checkpoint{
		{Height: 0, Hash: testNetGenesisHash},
	},
}

// RegressionNetParams are the parameters for the local regression test
// network. Deployment timings on this network may be overridden via
// SetRegtestDeployment, a narrowly scoped setter used only by tests
// (spec.md §4.4).
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         0x5aa50ffa,
	DefaultPort: "18444",

	GenesisBlock: &regTestGenesisBlock,
	GenesisHash:  regTestGenesisHash,

	PowLimit:     regressionPowLimit,
	PowLimitBits: 0x207fffff,

	PoWNoRetargeting:         true,
	AllowMinDifficultyBlocks: true,

	SubsidyHalvingInterval:    150,
	SubsidyHalvingIntervalV2a: 150,
	SubsidyHalvingIntervalV2b: 150,
	SubsidyHalvingIntervalV2c: 150,
	BaseSubsidy:               1000 * 1e8,

	NumAlgos: int32(chainalgo.NumAlgos),

	TargetSpacingV1:  30,
	TargetSpacingV2:  60,
	TargetSpacingV3a: 120,
	TargetSpacingV3b: 240,
	TargetSpacingV3c: 480,

	AveragingInterval: 10,

	MaxAdjustDown: 16,
	MaxAdjustUpV1: 8,
	MaxAdjustUpV2: 16,

	BlockTimeWarpPreventStart1: 0,
	BlockTimeWarpPreventStart2: 0,
	BlockTimeWarpPreventStart3: 0,

	Phase2TimespanStart: 0,
	BlockDiffAdjustV2:   0,

	BlockSequentialAlgoRuleStart1: 0,
	BlockSequentialAlgoRuleStart2: 0,
	SequentialAlgoMaxCount1:       6,
	SequentialAlgoMaxCount2:       3,
	SequentialAlgoMaxCount3:       6,

	BlockAlgoWorkWeightStart: 0,

	BlockAlgoNormalisedWorkStart:       0,
	BlockAlgoNormalisedWorkDecayStart1: 0,
	BlockAlgoNormalisedWorkDecayStart2: 0,

	GeoAvgWorkStart: 0,

	Fork1MinBlock: 0,

	StartAuxPow: 0,

	LongblocksStartV1a: 0,
	LongblocksStartV1b: 0,
	LongblocksStartV1c: 0,

	RetargetFamily: RetargetNone,

	AuxpowChainID: 0x006a,
	StrictChainID: false,

	TimeYescryptStart: 0,

	Deployments: map[string]Deployment{
		"testdummy": {BitNumber: 28, StartTime: 0, Timeout: 0},
	},

	Checkpoints: []Checkpoint{
		{Height: 0, Hash: regTestGenesisHash},
	},
}

var (
	activeParams     *Params
	activeNetworkName string
	activeParamsOnce sync.Once

	regtestMu sync.Mutex
)

// SelectNetwork resolves the named network to its Params and exposes it
// process-wide as an initialize-once handle, per spec.md §4.4 and §9's
// replacement for the source's mutable global singleton pCurrentParams.
// Only the first call has effect; a later call naming a different network
// than the one already selected returns ErrNetworkAlreadySelected. name
// must be one of "main", "test", "regtest".
func SelectNetwork(name string) (*Params, error) {
	var selectErr error
	activeParamsOnce.Do(func() {
		switch name {
		case "main":
			activeParams = &MainNetParams
		case "test":
			activeParams = &TestNetParams
		case "regtest":
			activeParams = &RegressionNetParams
		default:
			selectErr = ErrUnknownNetwork
			return
		}
		activeNetworkName = name
	})
	if selectErr != nil {
		return nil, selectErr
	}
	if activeNetworkName != "" && activeNetworkName != name {
		return activeParams, ErrNetworkAlreadySelected
	}
	return activeParams, nil
}

// ActiveParams returns the process-wide Params handle set by SelectNetwork,
// or nil if no network has been selected yet.
func ActiveParams() *Params {
	return activeParams
}

// SetRegtestDeployment overrides a deployment's start/timeout on
// RegressionNetParams. It is a narrowly scoped escape hatch for tests
// (spec.md §4.4: "Regtest permits a narrowly scoped override of deployment
// timings") and must never be called against MainNetParams or TestNetParams.
func SetRegtestDeployment(name string, d Deployment) {
	regtestMu.Lock()
	defer regtestMu.Unlock()
	RegressionNetParams.Deployments[name] = d
}
