package greedy

import "fmt"

type Config struct {
	// Число горутин, между которыми делится просмотр подмножеств на каждой итерации.
	// 1: последовательный просмотр.
	Workers int
	// Минимальное число подмножеств, начиная с которого просмотр распараллеливается.
	ParallelThreshold int
}

func DefaultConfig() Config {
	return Config{
		Workers:           1,
		ParallelThreshold: 2048,
	}
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf(
			"Workers должно быть >= 1 (получено %d)",
			c.Workers,
		)
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf(
			"ParallelThreshold должно быть >= 0 (получено %d)",
			c.ParallelThreshold,
		)
	}
	return nil
}

func (c Config) parallel(subsets int) bool {
	return c.Workers > 1 && subsets >= c.ParallelThreshold
}
