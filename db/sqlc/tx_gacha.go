package db

import (
	"context"
	"fmt"

	"github.com/scbae18/sololife/algorithm"
	"github.com/scbae18/sololife/util"
)

// Gacha outcome categories.
const (
	GachaOutcomeCharacter = "character"
	GachaOutcomeAsset     = "asset"
	GachaOutcomeBonus     = "bonus"
)

// RollGachaTxParams contains the input parameters for a single gacha roll.
// Cost must already be normalized by the caller (see util.GachaConfig).
type RollGachaTxParams struct {
	UserID int64
	Cost   int64
	Config util.GachaConfig
	Rand   algorithm.Rand
}

// RollGachaTxResult contains the result of a gacha roll transaction.
// Exactly one of Character, Asset or BonusPoints is populated, selected by
// Outcome.
type RollGachaTxResult struct {
	Outcome     string
	Spent       int64
	Character   *Character
	Asset       *UserAsset
	Replaced    bool
	BonusPoints int64
	User        User
}

// RollGachaTx performs one gacha roll as a single atomic unit: debit the
// cost, resolve a weighted outcome, grant the reward and recompute the
// user's title. Any failure after the debit rolls the whole roll back, so a
// user never pays for a reward that was not granted.
//
// The user row is locked for the duration of the transaction, which
// serializes concurrent rolls by the same user and keeps the balance from
// going negative.
func (store *SQLStore) RollGachaTx(ctx context.Context, arg RollGachaTxParams) (RollGachaTxResult, error) {
	var result RollGachaTxResult
	cfg := arg.Config.Normalize()

	err := store.execTx(ctx, func(q *Queries) error {
		user, err := q.GetUserForUpdate(ctx, arg.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if user.Points < arg.Cost {
			return ErrInsufficientPoints
		}

		balance := user.Points - arg.Cost
		result.Spent = arg.Cost

		if _, err = q.CreatePointTransaction(ctx, CreatePointTransactionParams{
			UserID:       arg.UserID,
			Amount:       -arg.Cost,
			Reason:       "gacha_roll",
			BalanceAfter: balance,
		}); err != nil {
			return fmt.Errorf("debit transaction: %w", err)
		}

		outcome := pickOutcome(arg.Rand, cfg)
		if outcome == GachaOutcomeCharacter {
			granted, err := grantCharacter(ctx, q, arg.UserID, arg.Rand, &result)
			if err != nil {
				return err
			}
			if !granted {
				// Every character is already owned; degrade to a bonus
				// grant instead of failing the roll.
				outcome = GachaOutcomeBonus
			}
		}

		switch outcome {
		case GachaOutcomeCharacter:
			// Already granted above.
		case GachaOutcomeAsset:
			if err := grantAsset(ctx, q, arg.UserID, arg.Rand, cfg, &result); err != nil {
				return err
			}
		case GachaOutcomeBonus:
			span := cfg.BonusMax - cfg.BonusMin + 1
			bonus := cfg.BonusMin + int64(arg.Rand.IntN(int(span)))
			balance += bonus
			result.Outcome = GachaOutcomeBonus
			result.BonusPoints = bonus

			if _, err = q.CreatePointTransaction(ctx, CreatePointTransactionParams{
				UserID:       arg.UserID,
				Amount:       bonus,
				Reason:       "gacha_bonus",
				BalanceAfter: balance,
			}); err != nil {
				return fmt.Errorf("bonus transaction: %w", err)
			}
		}

		result.User, err = q.UpdateUserPoints(ctx, UpdateUserPointsParams{
			ID:     arg.UserID,
			Points: balance,
			Title:  util.TitleForPoints(balance),
		})
		if err != nil {
			return fmt.Errorf("update points: %w", err)
		}

		return nil
	})

	return result, err
}

// pickOutcome resolves the outcome category by roulette-wheel selection over
// the configured weights.
func pickOutcome(r algorithm.Rand, cfg util.GachaConfig) string {
	outcomes := []string{GachaOutcomeCharacter, GachaOutcomeAsset, GachaOutcomeBonus}
	idx := algorithm.WeightedPick(r, []float64{cfg.CharacterWeight, cfg.AssetWeight, cfg.BonusWeight})
	return outcomes[idx]
}

// grantCharacter picks a uniformly random character the user does not own
// yet. It reports false without granting anything when the user already owns
// every character in the catalog.
func grantCharacter(ctx context.Context, q *Queries, userID int64, r algorithm.Rand, result *RollGachaTxResult) (bool, error) {
	characters, err := q.ListCharacters(ctx)
	if err != nil {
		return false, fmt.Errorf("list characters: %w", err)
	}
	ownedIDs, err := q.ListUserCharacterIDs(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("list owned characters: %w", err)
	}

	owned := make(map[int64]bool, len(ownedIDs))
	for _, id := range ownedIDs {
		owned[id] = true
	}
	unowned := make([]Character, 0, len(characters))
	for _, c := range characters {
		if !owned[c.ID] {
			unowned = append(unowned, c)
		}
	}
	if len(unowned) == 0 {
		return false, nil
	}

	picked := unowned[r.IntN(len(unowned))]
	if _, err := q.AddUserCharacter(ctx, AddUserCharacterParams{
		UserID:      userID,
		CharacterID: picked.ID,
	}); err != nil {
		return false, fmt.Errorf("add character: %w", err)
	}

	result.Outcome = GachaOutcomeCharacter
	result.Character = &picked
	return true, nil
}

// grantAsset picks an asset id from the configured pool, preferring ids the
// user does not own yet. Below the slot cap the asset is appended to the next
// free slot; at the cap it replaces a uniformly random existing slot.
func grantAsset(ctx context.Context, q *Queries, userID int64, r algorithm.Rand, cfg util.GachaConfig, result *RollGachaTxResult) error {
	assets, err := q.ListUserAssets(ctx, userID)
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}

	owned := make(map[string]bool, len(assets))
	for _, a := range assets {
		owned[a.AssetID] = true
	}
	pool := make([]string, 0, len(cfg.AssetPool))
	for _, id := range cfg.AssetPool {
		if !owned[id] {
			pool = append(pool, id)
		}
	}
	if len(pool) == 0 {
		pool = cfg.AssetPool
	}
	assetID := pool[r.IntN(len(pool))]

	var granted UserAsset
	if int32(len(assets)) < cfg.MaxAssetSlots {
		granted, err = q.AddUserAsset(ctx, AddUserAssetParams{
			UserID:  userID,
			Slot:    int32(len(assets)) + 1,
			AssetID: assetID,
		})
		if err != nil {
			return fmt.Errorf("add asset: %w", err)
		}
	} else {
		victim := assets[r.IntN(len(assets))]
		granted, err = q.ReplaceUserAsset(ctx, ReplaceUserAssetParams{
			UserID:  userID,
			Slot:    victim.Slot,
			AssetID: assetID,
		})
		if err != nil {
			return fmt.Errorf("replace asset: %w", err)
		}
		result.Replaced = true
	}

	result.Outcome = GachaOutcomeAsset
	result.Asset = &granted
	return nil
}
