package pricing

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// 基準サイズ（100ml あたりの価格で比較する）
const BaseSize = 100

// sizeが0のときは基準価格を計算できない
var ErrZeroSize = errors.New("pricing: size must not be zero")

// BasePrice は price を baseSize あたりの価格に換算する。
// 丸めはしない（呼び出し側で Round2 する）。
func BasePrice(price, size, baseSize float64) (float64, error) {
	if size == 0 {
		return 0, ErrZeroSize
	}
	p := decimal.NewFromFloat(price)
	s := decimal.NewFromFloat(size)
	b := decimal.NewFromFloat(baseSize)
	return p.Mul(b).DivRound(s, 16).InexactFloat64(), nil
}

// Round2 は小数点以下2桁に丸める（half away from zero）。
// NaN / Inf はそのまま返す。
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// RoundedBasePrice は Round2(BasePrice(...))
func RoundedBasePrice(price, size float64) (float64, error) {
	bp, err := BasePrice(price, size, BaseSize)
	if err != nil {
		return 0, err
	}
	return Round2(bp), nil
}
