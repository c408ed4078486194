package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/utils"
)

// DefaultLeaderboardCount is the size of each ranking when its parameter is absent
const DefaultLeaderboardCount = 10

// GetLeaderboard handles GET /api/leaderboard
// @Summary Leaderboard
// @Description Get the gold rankings of categories, photos, users and givers
// @Tags Gold
// @Produce json
// @Param categories query int false "Categories to rank" default(10)
// @Param photos query int false "Photos to rank" default(10)
// @Param users query int false "Users to rank by balance" default(10)
// @Param giving query int false "Users to rank by gold given" default(10)
// @Success 200 {object} contracts.LeaderboardContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(c *fiber.Ctx) error {
	counts := make([]int, 0, 4)
	for _, name := range []string{"categories", "photos", "users", "giving"} {
		n, err := queryInt(c, name, DefaultLeaderboardCount)
		if err != nil {
			return failed(c, err, "getLeaderboard")
		}
		counts = append(counts, n)
	}

	board, err := h.Repo.GetLeaderboard(c.UserContext(), counts[0], counts[1], counts[2], counts[3])
	if err != nil {
		return failed(c, err, "getLeaderboard")
	}
	return utils.SuccessResponse(c, board, fiber.StatusOK)
}
