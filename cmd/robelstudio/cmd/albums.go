package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/albums"
	"github.com/abiy5791/RobelStudio-sub001/themes"
)

var albumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "Browse and manage photo albums",
}

var (
	listPage     int
	listPageSize int
)

var albumsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent public albums",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.ListAlbums(cmd.Context(), listPage, listPageSize)
		if err != nil {
			return err
		}
		printAlbumPage(page, listPage, listPageSize)
		return nil
	},
}

var albumsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own albums",
	RunE: func(cmd *cobra.Command, args []string) error {
		return protect(cmd, func(cmd *cobra.Command) error {
			page, err := client.GetMyAlbums(cmd.Context(), listPage, listPageSize)
			if err != nil {
				return err
			}
			printAlbumPage(page, listPage, listPageSize)
			return nil
		})
	},
}

func printAlbumPage(page *albums.Page, pageNum, pageSize int) {
	if len(page.Results) == 0 {
		fmt.Println("No albums found")
		return
	}

	for _, a := range page.Results {
		category := themes.Parse(a.Category)
		theme := themes.For(category)
		fmt.Printf("%s%s %s%s  %s\n", category.Accent(), theme.Icon, a.Names, themes.ResetColor, a.Slug)
		fmt.Printf("   %s · %d photos", theme.Name, a.PhotoCount)
		if a.Date != "" {
			fmt.Printf(" · %s", a.Date)
		}
		if a.OwnerUsername != "" {
			fmt.Printf(" · by %s", a.OwnerUsername)
		}
		fmt.Println()
	}

	if pageNum <= 0 {
		pageNum = 1
	}
	if total := page.TotalPages(effectivePageSize(pageSize)); total > 1 {
		fmt.Printf("\nPage %d of %d (%d albums)\n", pageNum, total, page.Count)
	}
}

func effectivePageSize(pageSize int) int {
	if pageSize <= 0 {
		return 20
	}
	return pageSize
}

func init() {
	albumsCmd.PersistentFlags().IntVar(&listPage, "page", 1, "page number")
	albumsCmd.PersistentFlags().IntVar(&listPageSize, "page-size", 20, "albums per page")
	albumsCmd.AddCommand(albumsListCmd)
	albumsCmd.AddCommand(albumsMineCmd)
	rootCmd.AddCommand(albumsCmd)
}
