package dto

import (
	"reflect"

	"lottery-awards/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators adds the lottery tags to v:
//
//	lottery_number  integer within 0..99999
//	prize_tier      a tier name such as "first" or "little"
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("lottery_number", validateLotteryNumber)
	_ = v.RegisterValidation("prize_tier", validatePrizeTier)
}

func validateLotteryNumber(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := f.Int()
		return n >= 0 && n <= int64(domain.MaxLotteryNumber)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.Uint() <= uint64(domain.MaxLotteryNumber)
	case reflect.String:
		_, err := domain.ParseLotteryNumber(f.String())
		return err == nil
	default:
		return false
	}
}

func validatePrizeTier(fl validator.FieldLevel) bool {
	_, err := domain.ParseTier(fl.Field().String())
	return err == nil
}
