// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/chainalgo"
)

func TestRegressionParamsDisablesRetargeting(t *testing.T) {
	require.True(t, chaincfg.RegressionNetParams.PoWNoRetargeting)
	require.Equal(t, chaincfg.RetargetNone, chaincfg.RegressionNetParams.RetargetFamily)
}

func TestFifthSlotAlgoAtActivation(t *testing.T) {
	p := &chaincfg.MainNetParams
	require.Equal(t, chainalgo.Qubit, p.FifthSlotAlgoAt(p.TimeYescryptStart-1))
	require.Equal(t, chainalgo.Yescrypt, p.FifthSlotAlgoAt(p.TimeYescryptStart))
}

func TestMainNetCheckpointsIncludeGenesis(t *testing.T) {
	require.NotEmpty(t, chaincfg.MainNetParams.Checkpoints)
	require.Equal(t, int32(0), chaincfg.MainNetParams.Checkpoints[0].Height)
	require.Equal(t, chaincfg.MainNetParams.GenesisHash, chaincfg.MainNetParams.Checkpoints[0].Hash)
}

func TestCheckBlockAgainstMainNetCheckpoints(t *testing.T) {
	checkpoints := chaincfg.MainNetParams.Checkpoints

	var at740001, at1402167 chaincfg.Checkpoint
	for _, c := range checkpoints {
		switch c.Height {
		case 740001:
			at740001 = c
		case 1402167:
			at1402167 = c
		}
	}
	require.NotZero(t, at740001.Height)
	require.NotZero(t, at1402167.Height)

	require.True(t, chaincfg.CheckBlock(checkpoints, 740001, at740001.Hash))
	require.True(t, chaincfg.CheckBlock(checkpoints, 1402167, at1402167.Hash))

	// Wrong hashes at checkpoints fail.
	require.False(t, chaincfg.CheckBlock(checkpoints, 740001, at1402167.Hash))
	require.False(t, chaincfg.CheckBlock(checkpoints, 1402167, at740001.Hash))

	// Any hash not at a checkpoint height succeeds.
	require.True(t, chaincfg.CheckBlock(checkpoints, 740001+1, at1402167.Hash))
	require.True(t, chaincfg.CheckBlock(checkpoints, 1402167+1, at740001.Hash))

	require.GreaterOrEqual(t, chaincfg.GetTotalBlocksEstimate(checkpoints), int32(1402167))
}

func TestAlgoWorkFactorCoversEveryAlgo(t *testing.T) {
	require.Equal(t, int64(1), chaincfg.AlgoWorkFactor[chainalgo.SHA256D])
	require.Equal(t, int64(4096), chaincfg.AlgoWorkFactor[chainalgo.SCRYPT])
	require.Equal(t, int64(512), chaincfg.AlgoWorkFactor[chainalgo.GROESTL])
	require.Equal(t, int64(24), chaincfg.AlgoWorkFactor[chainalgo.SKEIN])
	require.Equal(t, int64(1024), chaincfg.AlgoWorkFactor[chainalgo.FifthSlot])
}

func TestSetRegtestDeploymentOverride(t *testing.T) {
	chaincfg.SetRegtestDeployment("testdummy", chaincfg.Deployment{BitNumber: 28, StartTime: 100, Timeout: 200})
	d := chaincfg.RegressionNetParams.Deployments["testdummy"]
	require.Equal(t, uint64(100), d.StartTime)
	require.Equal(t, uint64(200), d.Timeout)
}
