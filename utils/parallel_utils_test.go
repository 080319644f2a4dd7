package utils

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Bucket sizes are balanced with a maximum imbalance of one
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 10000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Inverted bucket probe - find bucket that contains index
		for maxIndex := 10; maxIndex < 1000; maxIndex++ {
			pm := NewPartitionMap(5, maxIndex)
			for k := 0; k < maxIndex; k++ {
				bn, min, max := pm.GetBucket(k)
				mmin, mmax := pm.GetBucketRange(bn)
				assert.True(t, k >= min && k < max && min == mmin && max == mmax)
			}
		}
	}
	{ // Local / global index round trip
		pm := NewPartitionMap(4, 10)
		for k := 0; k < 10; k++ {
			kLocal, Kmax, bn := pm.GetLocalK(k)
			assert.True(t, kLocal < Kmax)
			assert.Equal(t, k, pm.GetGlobalK(kLocal, bn))
		}
	}
}

func TestMailBox(t *testing.T) {
	type payload struct {
		From, Val int
	}
	var (
		NP = 4
		mb = NewMailBox[payload](NP)
		wg = sync.WaitGroup{}
	)
	// Each thread posts its id to every other thread, then all sync and
	// receive. Two rounds verify that buffers reset cleanly.
	for round := 0; round < 2; round++ {
		for n := 0; n < NP; n++ {
			wg.Add(1)
			go func(myThread int) {
				defer wg.Done()
				mb.PostMessageToAll(myThread, payload{From: myThread, Val: myThread * 10})
				mb.DeliverMyMessages(myThread)
			}(n)
		}
		wg.Wait()
		for n := 0; n < NP; n++ {
			wg.Add(1)
			go func(myThread int) {
				defer wg.Done()
				mb.ReceiveMyMessages(myThread)
				var senders []int
				for _, msg := range mb.ReceiveMsgQs[myThread].Cells() {
					senders = append(senders, msg.From)
					assert.Equal(t, msg.From*10, msg.Val)
				}
				assert.Equal(t, NP-1, len(senders))
				for _, s := range senders {
					assert.NotEqual(t, myThread, s)
				}
				mb.ClearMyMessages(myThread)
			}(n)
		}
		wg.Wait()
	}
}
